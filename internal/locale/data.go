package locale

var spanish = localeData{
	locale: "es_ES",
	firstNames: []string{
		"Antonio", "Manuel", "José", "Francisco", "David", "Juan", "Javier", "Daniel",
		"Carlos", "Alejandro", "Miguel", "Rafael", "Pablo", "Sergio", "Jorge", "Álvaro",
		"María", "Carmen", "Ana", "Isabel", "Laura", "Cristina", "Marta", "Lucía",
		"Elena", "Pilar", "Rosa", "Paula", "Sara", "Raquel", "Nuria", "Inés",
	},
	lastNames: []string{
		"García", "Rodríguez", "González", "Fernández", "López", "Martínez", "Sánchez",
		"Pérez", "Gómez", "Martín", "Jiménez", "Ruiz", "Hernández", "Díaz", "Moreno",
		"Muñoz", "Álvarez", "Romero", "Alonso", "Gutiérrez", "Navarro", "Torres",
		"Domínguez", "Vázquez", "Ramos", "Gil", "Ramírez", "Serrano", "Blanco", "Molina",
	},
	streetTypes:  []string{"Calle", "Avenida", "Plaza", "Paseo", "Camino", "Ronda", "Travesía"},
	streetNames:  []string{"Mayor", "de la Constitución", "del Sol", "Real", "de Alcalá", "de Gracia", "San Juan", "de la Paz", "del Carmen", "Nueva", "de Cervantes", "de la Iglesia", "del Mar", "de Goya"},
	streetFormat: "%[1]s %[2]s, %[3]d",
	places: []Place{
		{"Madrid", "Madrid"}, {"Barcelona", "Barcelona"}, {"Valencia", "Valencia"},
		{"Sevilla", "Sevilla"}, {"Zaragoza", "Zaragoza"}, {"Málaga", "Málaga"},
		{"Bilbao", "Vizcaya"}, {"Valladolid", "Valladolid"},
	},
	postcodes:    []string{"0####", "1####", "2####", "3####", "4####"},
	phones:       []string{"+34 6## ### ###", "+34 7## ### ###", "+34 9## ## ## ##", "6########", "9## ######"},
	mailDomains:  []string{"gmail.com", "hotmail.es", "yahoo.es", "outlook.es", "telefonica.net"},
	tld:          "es",
	words: []string{
		"cliente", "cuenta", "operación", "revisión", "movimiento", "pago", "tarjeta",
		"sospechoso", "bloqueo", "importe", "transferencia", "acceso", "titular",
		"verificación", "incidencia", "banco", "registro", "seguridad", "aviso", "fondos",
	},
}

var french = localeData{
	locale: "fr_FR",
	firstNames: []string{
		"Jean", "Pierre", "Michel", "Philippe", "Nicolas", "Julien", "Thomas", "Antoine",
		"Marie", "Nathalie", "Isabelle", "Sylvie", "Camille", "Claire", "Chloé", "Manon",
	},
	lastNames: []string{
		"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand",
		"Leroy", "Moreau", "Simon", "Laurent", "Lefebvre", "Michel", "Fournier", "Girard",
	},
	streetTypes:  []string{"rue", "avenue", "boulevard", "place", "impasse", "chemin"},
	streetNames:  []string{"de la République", "Victor Hugo", "de la Gare", "Jean Jaurès", "de Paris", "du Moulin", "des Écoles", "Pasteur", "de l'Église", "du Général de Gaulle"},
	streetFormat: "%[3]d %[1]s %[2]s",
	places: []Place{
		{"Paris", "Île-de-France"},
		{"Marseille", "Provence-Alpes-Côte d'Azur"},
		{"Lyon", "Auvergne-Rhône-Alpes"},
		{"Toulouse", "Occitanie"},
		{"Nice", "Provence-Alpes-Côte d'Azur"},
		{"Nantes", "Pays de la Loire"},
		{"Strasbourg", "Grand Est"},
		{"Bordeaux", "Nouvelle-Aquitaine"},
		{"Lille", "Hauts-de-France"},
		{"Rennes", "Bretagne"},
	},
	postcodes:    []string{"#####"},
	phones:       []string{"+33 6 ## ## ## ##", "+33 1 ## ## ## ##", "0# ## ## ## ##"},
	mailDomains:  []string{"orange.fr", "free.fr", "laposte.net", "gmail.com", "sfr.fr"},
	tld:          "fr",
	words: []string{
		"client", "compte", "opération", "paiement", "carte", "banque", "virement",
		"contrôle", "accès", "sécurité", "titulaire", "montant", "dossier", "alerte",
	},
}

var german = localeData{
	locale: "de_DE",
	firstNames: []string{
		"Peter", "Michael", "Thomas", "Andreas", "Stefan", "Klaus", "Jürgen", "Lukas",
		"Ursula", "Monika", "Petra", "Sabine", "Claudia", "Anna", "Lena", "Sophie",
	},
	lastNames: []string{
		"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker",
		"Schulz", "Hoffmann", "Schäfer", "Koch", "Bauer", "Richter", "Klein", "Wolf",
	},
	streetTypes:  []string{"straße", "weg", "allee", "platz", "gasse", "ring"},
	streetNames:  []string{"Haupt", "Schul", "Garten", "Bahnhof", "Dorf", "Berg", "Kirch", "Wald", "Linden", "Schiller", "Goethe", "Ring"},
	streetFormat: "%[2]s%[1]s %[3]d",
	places: []Place{
		{"Berlin", "Berlin"},
		{"Hamburg", "Hamburg"},
		{"München", "Bayern"},
		{"Köln", "Nordrhein-Westfalen"},
		{"Frankfurt am Main", "Hessen"},
		{"Stuttgart", "Baden-Württemberg"},
		{"Düsseldorf", "Nordrhein-Westfalen"},
		{"Leipzig", "Sachsen"},
		{"Dortmund", "Nordrhein-Westfalen"},
		{"Bremen", "Bremen"},
		{"Hannover", "Niedersachsen"},
	},
	postcodes:    []string{"#####"},
	phones:       []string{"+49 15# #######", "+49 17# #######", "+49 30 ########", "0### ######"},
	mailDomains:  []string{"web.de", "gmx.de", "t-online.de", "gmail.com", "posteo.de"},
	tld:          "de",
	words: []string{
		"Kunde", "Konto", "Zahlung", "Karte", "Bank", "Überweisung", "Prüfung",
		"Zugang", "Sicherheit", "Inhaber", "Betrag", "Vorgang", "Hinweis", "Sperre",
	},
}

// gofakeit draws city and state independently, so en_US addresses use
// this paired table instead.
var usPlaces = []Place{
	{"New York", "New York"},
	{"Buffalo", "New York"},
	{"Los Angeles", "California"},
	{"San Francisco", "California"},
	{"San Diego", "California"},
	{"Chicago", "Illinois"},
	{"Houston", "Texas"},
	{"Austin", "Texas"},
	{"Dallas", "Texas"},
	{"Phoenix", "Arizona"},
	{"Philadelphia", "Pennsylvania"},
	{"Miami", "Florida"},
	{"Orlando", "Florida"},
	{"Seattle", "Washington"},
	{"Boston", "Massachusetts"},
	{"Denver", "Colorado"},
	{"Atlanta", "Georgia"},
	{"Portland", "Oregon"},
}

var english = []string{
	"account", "customer", "payment", "card", "transfer", "review", "suspicious",
	"access", "holder", "amount", "activity", "security", "alert", "funds", "report",
}
