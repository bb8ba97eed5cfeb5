package contributors

// staticNames is used when no live contributor list is available.
var staticNames = []string{
	"0x22fe",
	"8bp",
	"Aaron Housh",
	"Aaron Winter",
	"Adamaq01",
	"Adam Bates",
	"adekau",
	"Aevyrie",
	"Agorgianitis Loukas",
	"Alec Deason",
	"Alessandro Re",
	"Alex",
	"Alexander Krivács Schrøder",
	"Alexander Sepity",
	"Alex.F",
	"Alex Hirsch",
	"Alice Cecile",
	"Alister Lee",
	"Al M",
	"aloucks",
	"Amber Kowalski",
	"Anders Rasmussen",
	"andoco",
	"Andreas Weibye",
	"André Heringer",
	"Andre Kuehne",
	"Andre Popovitch",
	"Andrew Hickman",
	"AngelicosPhosphoros",
	"Anselmo Sampietro",
	"Archina",
	"bg",
	"bilsen",
	"BimDav",
	"bjorn3",
	"Boiethios",
	"Boutillier",
	"Boxy",
	"Bram Buurlage",
	"caelunshun",
	"Caleb Boylan",
	"Callum Tolley",
	"Cameron Hart",
	"carter",
	"Carter Anderson",
	"Catherine Gilbert",
	"CGMossa",
	"Charles Giguere",
	"Chris Janaqi",
	"Christopher Durham",
	"Chrs Msln",
	"Claire C",
	"ColonisationCaptain",
	"Corey Farwell",
	"Cory Forsstrom",
	"CrazyRoka",
	"Csányi István",
	"Daniel Borges",
	"Daniel Burrows",
	"Daniel Jordaan",
	"Daniel McNab",
	"Dashiell Elliott",
	"dataphract",
	"David Ackerman",
	"David McClung",
	"davier",
	"Denis Laprise",
	"dependabot[bot]",
	"deprilula28",
	"DGriffin91",
	"Digital Seven",
	"Dimev",
	"Dimitri Belopopsky",
	"Dimitri Bobkov",
	"dinococo",
	"dintho",
	"Downtime",
	"Duncan",
	"Dusty DeWeese",
	"easynam",
	"Elias",
	"Emanuel Lindström",
	"EthanYidong",
	"Fabian Löschner",
	"Fabian Würfl",
	"Federico Rinaldi",
	"Felipe Jorge",
	"figsoda",
	"FlyingRatBull",
	"follower",
	"forbjok",
	"Forest Anderson",
	"François",
	"Freya",
	"Fuyang Liu",
	"Gab Campbell",
	"GabLotus",
	"Garett Cooper",
	"Georg Friedrich Schuppe",
	"Gilbert Röhrbein",
	"giusdp",
	"Grant Moyer",
	"Gray Olson",
	"Grayson Burton",
	"Gregor",
	"Gregory Oakes",
	"Grindv1k",
	"Guillaume DALLENNE",
	"Guim Caballero",
	"Halfwhit",
	"Hans W. Uhlig",
	"Hoidigan",
	"Hugo Lindsay",
	"HyperLightKitsune",
	"Iaiao",
	"ifletsomeclaire",
	"Ilja Kartašov",
	"iMplode nZ",
	"Isaak Eriksson",
	"Ixentus",
	"Jackson Lango",
	"Jacob Gardner",
	"jak6jak",
	"Jake Kerr",
	"Jakob Hellermann",
	"James Higgins",
	"James Leflang",
	"James Liu",
	"James R",
	"Jasen Borisov",
	"Jay Oster",
	"Jeremiah Senkpiel",
	"Jerome Humbert",
	"jngbsn",
	"João Capucho",
	"Joel Nordström",
	"Johan Klokkhammer Helsing",
	"John",
	"John Doneth",
	"John Mitchell",
	"Jonas Matser",
	"Jonathan Behrens",
	"Jonathan Cornaz",
	"Josh Kuhn",
	"Josh Taylor",
	"Joshua Chapman",
	"Joshua J. Bouw",
	"Joshua Ols",
	"julhe",
	"Julian Heinken",
	"Junfeng Liu",
	"kaflu",
	"karroffel",
	"Kenneth Dodrill",
	"Klim Tsoutsman",
	"Kurt Kühnert",
	"Lachlan Sneff",
	"lambdagolem",
	"lee-orr",
	"Léo Gillot-Lamure",
	"Loch Wansbrough",
	"Logan Collins",
	"Logan Magee",
	"Lucas Kent",
	"Lucas Rocha",
	"Lukas Orsvärn",
	"Lukas Wirth",
	"M",
	"Marcel Müller",
	"Marc Parenteau",
	"Marcus Buffett",
	"Marek Fajkus",
	"Marek Legris",
	"marius851000",
	"Mariusz Kryński",
	"Mark",
	"Martin Lavoie",
	"Martín Maita",
	"Martin Svanberg",
	"Mat Hostetter",
	"Matteo Guglielmetti",
	"Matthias Seiffert",
	"Max Bruckner",
	"maxwellodri",
	"memoryruins",
	"mfrancis107",
	"MGlolenstine",
	"Michael Hills",
	"Michael Tang",
	"Mika",
	"Mikail Khan",
	"Mike",
	"Milan Vaško",
	"milkybit",
	"MinerSebas",
	"Minghao Liu",
	"MiniaczQ",
	"Mirko Rainer",
	"Moxinilian",
	"MsK`",
	"multun",
	"Nathan Jeffords",
	"Nathan Stocks",
	"Nathan Ward",
	"Nibor62",
	"Nicholas Rishel",
	"Nick",
	"Nikita Zdanovitch",
	"Niklas Eicker",
	"Noah Callaway",
	"Nolan Darilek",
	"Olivier Pinon",
	"OptimisticPeach",
	"Oscar",
	"Patrick Greene",
	"Patrik Buhring",
	"Paweł Grabarz",
	"Philip Degarmo",
	"Philipp Mildenberger",
	"Piotr Balcer",
	"Plecra",
	"Protowalker",
	"Psychoticpotato",
	"r00ster",
	"Raymond",
	"RedlineTriad",
	"reidbhuntley",
	"Rémi Lauzier",
	"Renato Caldas",
	"Restioson",
	"Richard Tjerngren",
	"RiskLove",
	"rmsthebest",
	"Rob",
	"Robbie Davenport",
	"Robert Swain",
	"Rob Parrett",
	"rod-salazar",
	"Ryan Lee",
	"Ryan Scheel",
	"sapir",
	"sark",
	"Saverio Miroddi",
	"Schell Carl Scivally",
	"sdfgeoff",
	"Sergey Minakov",
	"simens_green",
	"simlay",
	"Simon Guillot",
	"Smite Rust",
	"speak",
	"Spencer Burris",
	"Squirrel",
	"StarArawn",
	"stefee",
	"Stjepan Glavina",
	"SvenTS",
	"szunami",
	"taryn",
	"TehPers",
	"Telzhaak",
	"TEMHOTAOKEAHA",
	"terrarier2111",
	"thebluefish",
	"Theia Vogel",
	"the-notable",
	"Théo Degioanni",
	"TheRawMeatball",
	"therealstork",
	"Thirds",
	"Thomas Heartman",
	"Thomas Herzog",
	"Tiago Ferreira",
	"tiagolam",
	"tigregalis",
	"Tomasz Sterna",
	"Tom Bebb",
	"Toniman20",
	"Toothbrush",
	"TotalKrill",
	"Tristan Pemble",
	"Utkarsh",
	"Valentin",
	"verzuz",
	"Victor \"multun\" Collod",
	"VitalyR",
	"Vladyslav Batyrenko",
	"VVishion",
	"walterpie",
	"Waridley",
	"W. Brian Gourlie",
	"Will Crichton",
	"Will Dixon",
	"Will Hart",
	"William Batista",
	"willolisp",
	"Wojciech Olejnik",
	"Wouter Buckens",
	"Wouter Standaert",
	"wyhaya",
	"Xavientois",
	"Yoh Deadfall",
	"Zach Gotsch",
	"Zaszi",
	"Zhixing Zhang",
	"Zicklag",
	"Zooce",
}
