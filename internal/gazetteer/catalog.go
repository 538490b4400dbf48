package gazetteer

// alexandriaStops is the built-in catalog of named transit stops in Alexandria.
var alexandriaStops = []Stop{
	{ID: "1", Name: "Borg Al-Arab Old Terminal", Lat: 30.883987, Lon: 29.497864},
	{ID: "2", Name: "Baheeg Square", Lat: 30.901450, Lon: 29.544387},
	{ID: "3", Name: "Al-Marwa Mosque", Lat: 30.903941, Lon: 29.5475212},
	{ID: "4", Name: "Baheeg Traffic Department", Lat: 30.942326, Lon: 29.5933765},
	{ID: "5", Name: "King Heights", Lat: 30.948885, Lon: 29.606113},
	{ID: "6", Name: "Om Zeghyo", Lat: 31.0713418, Lon: 29.7615553},
	{ID: "7", Name: "Al-Madfan", Lat: 31.0751035, Lon: 29.7532603},
	{ID: "8", Name: "Al-Masaken", Lat: 31.076461, Lon: 29.747692},
	{ID: "9", Name: "Al-Emam Al-Shafaay Azhari Institute", Lat: 31.077242, Lon: 29.744465},
	{ID: "10", Name: "Awal Al-Tawkeel", Lat: 31.073307, Lon: 29.759550},
	{ID: "11", Name: "Zoro Cafe", Lat: 31.077735, Lon: 29.740312},
	{ID: "12", Name: "Kilo 21", Lat: 31.07786, Lon: 29.737498},
	{ID: "13", Name: "Street 6 Asafra", Lat: 31.265459, Lon: 30.00321},
	{ID: "17", Name: "Asafra Station", Lat: 31.269167, Lon: 30.00663},
	{ID: "21", Name: "Asafra Station", Lat: 31.267844, Lon: 30.009992},
	{ID: "32", Name: "Street 45 - Miami Bridge", Lat: 31.267516, Lon: 30.000048},
	{ID: "48", Name: "Abu Qir Station", Lat: 31.320357, Lon: 30.062969},
	{ID: "50", Name: "Abu Qir Club", Lat: 31.318915, Lon: 30.062263},
	{ID: "52", Name: "Abu Qir Train Station", Lat: 31.317801, Lon: 30.061648},
	{ID: "54", Name: "AAST Intersection", Lat: 31.30886, Lon: 30.058856},
	{ID: "56", Name: "Abu Qir Engineering Company", Lat: 31.315975, Lon: 30.060867},
	{ID: "58", Name: "Administration Station", Lat: 31.304387, Lon: 30.057650},
	{ID: "60", Name: "Street 16 (Montazah)", Lat: 31.302066, Lon: 30.062691},
	{ID: "61", Name: "El Sadat Mosque Abu Qir", Lat: 31.300619, Lon: 30.056728},
	{ID: "63", Name: "Al Souq Entrance Abu Qir", Lat: 31.296131, Lon: 30.054943},
	{ID: "65", Name: "Al Maamoura", Lat: 31.291855, Lon: 30.052065},
	{ID: "67", Name: "Al Islah", Lat: 31.284620, Lon: 30.039818},
	{ID: "69", Name: "Maamoura Children Park", Lat: 31.284028, Lon: 30.035003},
	{ID: "71", Name: "Maamoura Gates", Lat: 31.283503, Lon: 30.027416},
	{ID: "73", Name: "Street 25 Entrance", Lat: 31.261930, Lon: 30.071091},
	{ID: "75", Name: "Al Montazah Train Station", Lat: 31.282523, Lon: 30.020785},
	{ID: "77", Name: "El Mandara Bridge", Lat: 31.280395, Lon: 30.016220},
	{ID: "79", Name: "El Mandara", Lat: 31.280875, Lon: 30.015126},
	{ID: "81", Name: "El Mandara South", Lat: 31.276085, Lon: 30.017597},
	{ID: "83", Name: "School of Islamic Studies", Lat: 31.271116, Lon: 30.023042},
	{ID: "85", Name: "Al Milaha", Lat: 31.264476, Lon: 30.027827},
	{ID: "87", Name: "Al Berolos Canal", Lat: 31.273371, Lon: 30.058551},
	{ID: "88", Name: "Street 45 Asafra", Lat: 31.261259, Lon: 30.010096},
	{ID: "90", Name: "Street 45 Asafra Church", Lat: 31.260051, Lon: 30.011648},
	{ID: "92", Name: "Oqba Ibn Nafea Hospital", Lat: 31.261862, Lon: 30.009202},
	{ID: "94", Name: "Street 18 Asafra", Lat: 31.262648, Lon: 30.007861},
	{ID: "96", Name: "Abu Omar Pastry Asafra", Lat: 31.264053, Lon: 30.005483},
	{ID: "98", Name: "Asafra Station", Lat: 31.270327, Lon: 30.005421},
	{ID: "100", Name: "Asafra Train Station", Lat: 31.273157, Lon: 30.008148},
	{ID: "101", Name: "El Mandara Square", Lat: 31.280202, Lon: 30.012224},
	{ID: "102", Name: "Sheraton Montazah", Lat: 31.281670, Lon: 30.010697},
	{ID: "104", Name: "Water Company El Mandara", Lat: 31.279722, Lon: 30.009345},
	{ID: "106", Name: "Makram Ice Cream El Mandara", Lat: 31.277990, Lon: 30.007133},
	{ID: "108", Name: "El Nasreya El Qadema", Lat: 30.998390, Lon: 29.787749},
	{ID: "110", Name: "El Tayeb El Nasreya", Lat: 31.001647, Lon: 29.785412},
	{ID: "112", Name: "Green Gate El Nasreya", Lat: 31.006483, Lon: 29.792355},
	{ID: "114", Name: "Amreya Hospital", Lat: 31.011924, Lon: 29.798221},
	{ID: "116", Name: "Amreya Station", Lat: 31.009607, Lon: 29.805425},
	{ID: "119", Name: "El Ola Company Amreya", Lat: 31.005577, Lon: 29.804039},
	{ID: "120", Name: "Amreya Bridge", Lat: 31.020498, Lon: 29.794159},
	{ID: "122", Name: "Izbat Hawd 10", Lat: 31.243673, Lon: 30.048265},
	{ID: "123", Name: "Shahd El Maleka", Lat: 31.259586, Lon: 30.018943},
	{ID: "125", Name: "King House Cafe", Lat: 31.261659, Lon: 30.022582},
	{ID: "127", Name: "Awel 45", Lat: 31.269795, Lon: 30.998139},
	{ID: "129", Name: "Azza Asafra", Lat: 31.274639, Lon: 30.001705},
	{ID: "131", Name: "Gad Asafra", Lat: 31.271908, Lon: 29.999123},
	{ID: "133", Name: "Skandar Ibrahim - Courniche", Lat: 31.270267, Lon: 29.993477},
	{ID: "135", Name: "Izbet Hawd 12", Lat: 31.259442, Lon: 30.054319},
	{ID: "136", Name: "Mostafa Kamel - 45 Street", Lat: 31.258351, Lon: 30.015979},
	{ID: "138", Name: "Al Amrawy Mosque", Lat: 31.256301, Lon: 30.013529},
	{ID: "140", Name: "Mostafa Kamel - Al Bahreya St", Lat: 31.253418, Lon: 30.010225},
	{ID: "142", Name: "Misr Gas Station - Mostafa Kamel", Lat: 31.248387, Lon: 30.003204},
	{ID: "144", Name: "Alexandria Agricultural School", Lat: 31.250890, Lon: 30.007194},
	{ID: "146", Name: "Khorshid", Lat: 31.198029, Lon: 30.036089},
	{ID: "148", Name: "Khorshid Central", Lat: 31.196838, Lon: 30.039171},
	{ID: "150", Name: "Asher Men Ramadan St", Lat: 31.261717, Lon: 29.998549},
	{ID: "151", Name: "Faisal Police Station Asafrah", Lat: 31.263019, Lon: 29.999528},
	{ID: "152", Name: "Gehan Square", Lat: 31.261919, Lon: 29.993007},
	{ID: "154", Name: "Awel Gamal Abdelnaser St", Lat: 31.269692, Lon: 30.001663},
	{ID: "155", Name: "Bahary (Ras Al Tin)", Lat: 31.202041, Lon: 29.876082},
	{ID: "157", Name: "Navy Forces - Bahary", Lat: 31.203677, Lon: 29.874700},
	{ID: "158", Name: "Al Sheikh Wafiq - Bahary", Lat: 31.204122, Lon: 29.875741},
	{ID: "160", Name: "Fathallah - Bahary", Lat: 31.204925, Lon: 29.877454},
	{ID: "162", Name: "Alexandria Navy Scouts", Lat: 31.206091, Lon: 29.878518},
	{ID: "164", Name: "Qasr Sakafet El Anfoshy", Lat: 31.209847, Lon: 29.879240},
	{ID: "165", Name: "Anfoushy Police Station", Lat: 31.209968, Lon: 29.881695},
	{ID: "167", Name: "Carrefour - Desert Road", Lat: 31.16851, Lon: 29.934719},
	{ID: "169", Name: "Elite Hospital", Lat: 31.172732, Lon: 29.943355},
	{ID: "171", Name: "El Bambi", Lat: 31.175488, Lon: 29.948260},
	{ID: "173", Name: "IBCA International School", Lat: 31.178913, Lon: 29.955883},
	{ID: "175", Name: "Awayed Post Office", Lat: 31.211489, Lon: 30.008273},
	{ID: "178", Name: "Al Maraghi", Lat: 31.208809, Lon: 30.020825},
	{ID: "180", Name: "Al Rahma St - Khorshid", Lat: 31.206258, Lon: 30.029978},
	{ID: "182", Name: "Farouq Cafe - Courniche", Lat: 31.203867, Lon: 29.885535},
	{ID: "184", Name: "Fish Market - Courniche", Lat: 31.202045, Lon: 29.887846},
	{ID: "186", Name: "Court Complex - Courniche", Lat: 31.201110, Lon: 29.889844},
	{ID: "188", Name: "El Mansheya Station", Lat: 31.199740, Lon: 29.895185},
	{ID: "190", Name: "Raml Station", Lat: 31.200331, Lon: 29.899098},
	{ID: "192", Name: "Raml Station - Courniche", Lat: 31.201157, Lon: 29.898789},
	{ID: "194", Name: "French Consulate", Lat: 31.200503, Lon: 29.895198},
	{ID: "196", Name: "Al Khaledeen - Courniche", Lat: 31.203164, Lon: 29.902062},
	{ID: "198", Name: "Misr Gas Station - Courniche", Lat: 31.206635, Lon: 29.905654},
	{ID: "200", Name: "Dental School", Lat: 31.203854, Lon: 29.906754},
	{ID: "201", Name: "Al Khaledeen", Lat: 31.202897, Lon: 29.902976},
	{ID: "202", Name: "El Mansheya Station", Lat: 31.199353, Lon: 29.895700},
	{ID: "203", Name: "Miami - Courniche", Lat: 31.270044, Lon: 29.991522},
	{ID: "205", Name: "Ber Masoud", Lat: 31.269314, Lon: 29.987113},
	{ID: "207", Name: "Abu Dhabi Bank - Sidi Bishr", Lat: 31.265591, Lon: 29.987159},
	{ID: "209", Name: "Sidi Bishr Beach", Lat: 31.262307, Lon: 29.984377},
	{ID: "211", Name: "Mohamed Naguib Square", Lat: 31.259311, Lon: 29.980898},
	{ID: "214", Name: "Al Rahman Mosque - Courniche", Lat: 31.257247, Lon: 29.978774},
	{ID: "216", Name: "Sidi Bishr Tram Station", Lat: 31.252996, Lon: 29.976843},
	{ID: "218", Name: "Al Mahrousa Tunnel", Lat: 31.254816, Lon: 29.975639},
	{ID: "220", Name: "San Stefano", Lat: 31.246068, Lon: 29.965570},
	{ID: "222", Name: "Luran Station", Lat: 31.249398, Lon: 29.971624},
	{ID: "223", Name: "Quta (Soter)", Lat: 31.208106, Lon: 29.906747},
	{ID: "225", Name: "Alexandria University - Courniche", Lat: 31.210804, Lon: 29.912727},
	{ID: "227", Name: "Shatby Hospital Mosque", Lat: 31.208828, Lon: 29.912733},
	{ID: "229", Name: "Shatby Pedestrian Tunnel", Lat: 31.211945, Lon: 29.916118},
	{ID: "231", Name: "Gleem Pedestrian Tunnel", Lat: 31.240982, Lon: 29.959533},
	{ID: "233", Name: "Mohandeseen Pedestrian Tunnel", Lat: 31.239174, Lon: 29.954171},
	{ID: "235", Name: "Sun Rise Hotel", Lat: 31.232975, Lon: 29.946202},
	{ID: "237", Name: "Stanley Bridge", Lat: 31.236206, Lon: 29.950122},
	{ID: "239", Name: "The Walk - Sidi Gaber", Lat: 31.227199, Lon: 29.938278},
	{ID: "241", Name: "Camp Shezar", Lat: 31.215374, Lon: 29.921719},
	{ID: "243", Name: "Sporting - Courniche", Lat: 31.221021, Lon: 29.930492},
	{ID: "245", Name: "Cleopatra Pedestrian Bridge", Lat: 31.224575, Lon: 29.935015},
	{ID: "247", Name: "Hanuvil Gameaya", Lat: 31.111973, Lon: 29.758809},
	{ID: "248", Name: "Al Gomrok Police Station", Lat: 31.198555, Lon: 29.882496},
	{ID: "249", Name: "Hany Village", Lat: 31.031522, Lon: 29.785609},
	{ID: "251", Name: "Free Zone", Lat: 31.036524, Lon: 29.782195},
	{ID: "253", Name: "Bab Wahed", Lat: 31.200951, Lon: 29.881302},
	{ID: "254", Name: "El Malaha - Asafra", Lat: 31.268037, Lon: 30.018908},
	{ID: "255", Name: "Tamween Montazah", Lat: 31.258167, Lon: 29.987767},
	{ID: "257", Name: "Sidi Bishr Station", Lat: 31.256865, Lon: 29.991403},
	{ID: "261", Name: "Victoria Station", Lat: 31.248845, Lon: 29.980624},
	{ID: "263", Name: "Victoria College", Lat: 31.247678, Lon: 29.978304},
	{ID: "265", Name: "E-Post Victora", Lat: 31.251207, Lon: 29.984817},
	{ID: "267", Name: "Al Seyouf", Lat: 31.241168, Lon: 29.997369},
	{ID: "268", Name: "Abou Kamal - Al Seyouf", Lat: 31.240992, Lon: 29.998336},
	{ID: "270", Name: "Falaki - Al Seyouf", Lat: 31.241222, Lon: 29.998835},
	{ID: "271", Name: "Madares St - Al Seyouf", Lat: 31.237967, Lon: 29.999014},
	{ID: "273", Name: "Al Seyouf Square", Lat: 31.24058, Lon: 29.992509},
	{ID: "274", Name: "El Saah Square", Lat: 31.244342, Lon: 29.985606},
	{ID: "279", Name: "B-Tech Mostafa Kamel", Lat: 31.246437, Lon: 29.992494},
	{ID: "281", Name: "Malak Hefny St", Lat: 31.253722, Lon: 29.988864},
	{ID: "283", Name: "Street 15", Lat: 31.251034, Lon: 29.991799},
	{ID: "284", Name: "Jewelery Museum", Lat: 31.239650, Lon: 29.964262},
	{ID: "286", Name: "Bakus", Lat: 31.235818, Lon: 29.966513},
	{ID: "291", Name: "Al Wezara Tram", Lat: 31.231895, Lon: 29.956418},
	{ID: "293", Name: "Abu Suliman", Lat: 31.232121, Lon: 29.982893},
	{ID: "295", Name: "Health Insurance Al Seyouf", Lat: 31.230062, Lon: 29.993247},
	{ID: "296", Name: "Pedestrian Bridge - Ring Road", Lat: 31.213357, Lon: 29.993606},
	{ID: "298", Name: "Awayed Bridge Start", Lat: 31.215669, Lon: 29.994044},
	{ID: "300", Name: "El Awayed", Lat: 31.217499, Lon: 29.993861},
	{ID: "304", Name: "El Awayed Bridge End", Lat: 31.222197, Lon: 29.993587},
	{ID: "308", Name: "Entry to Abu Suliman", Lat: 31.224578, Lon: 29.979563},
	{ID: "310", Name: "Namos Bridge", Lat: 31.223723, Lon: 29.975230},
	{ID: "313", Name: "Gabriel Station Bazar", Lat: 31.238525, Lon: 29.976290},
	{ID: "314", Name: "Bait Al Gomla Market", Lat: 31.238747, Lon: 29.979583},
	{ID: "315", Name: "Wekala Ishterakeya", Lat: 31.238474, Lon: 29.982424},
	{ID: "317", Name: "Al Hagar Pedestrian Bridge", Lat: 31.220301, Lon: 29.965052},
	{ID: "320", Name: "Victor Emmanuel Square", Lat: 31.214177, Lon: 29.944853},
	{ID: "323", Name: "Sidi Gaber Station", Lat: 31.218117, Lon: 29.941997},
	{ID: "328", Name: "Abis Bridge", Lat: 31.203670, Lon: 29.993991},
	{ID: "330", Name: "Abis Traffic Light", Lat: 31.174897, Lon: 29.979008},
	{ID: "332", Name: "Anany Factory", Lat: 31.180540, Lon: 29.991436},
	{ID: "334", Name: "Ezbet Saad", Lat: 31.207976, Lon: 29.941022},
	{ID: "337", Name: "Admon Fremon St", Lat: 31.208387, Lon: 29.947496},
	{ID: "339", Name: "Gyad Club", Lat: 31.213487, Lon: 29.949469},
	{ID: "341", Name: "Mansour Opel Car Showroom", Lat: 31.225213, Lon: 29.94755},
	{ID: "343", Name: "Green Plaza", Lat: 31.209124, Lon: 29.962998},
	{ID: "345", Name: "Itihad Club", Lat: 31.203727, Lon: 29.975989},
	{ID: "347", Name: "Ali Ibn Taleb Mosque - Smouha", Lat: 31.212550, Lon: 29.940482},
	{ID: "349", Name: "Ibrahimeya Fly-over", Lat: 31.208693, Lon: 29.934206},
	{ID: "351", Name: "Hadra", Lat: 31.204794, Lon: 29.936128},
	{ID: "352", Name: "Antoniadis", Lat: 31.203226, Lon: 29.94066},
	{ID: "355", Name: "El Mansheya", Lat: 31.197631, Lon: 29.892740},
	{ID: "356", Name: "Gamarek Club", Lat: 31.193035, Lon: 29.885117},
	{ID: "357", Name: "Darwish Factory", Lat: 31.188877, Lon: 29.886331},
	{ID: "358", Name: "Train Station (Al Shohadaa)", Lat: 31.193563, Lon: 29.90258},
	{ID: "363", Name: "Kafr Ashry", Lat: 31.181795, Lon: 29.884821},
	{ID: "365", Name: "Al Wardiyan", Lat: 31.162603, Lon: 29.866732},
	{ID: "367", Name: "Al Gamal Mosque", Lat: 31.168011, Lon: 29.869020},
	{ID: "369", Name: "Al Wardiyan Police Station", Lat: 31.164115, Lon: 29.863724},
	{ID: "371", Name: "Dish Horus", Lat: 31.167953, Lon: 29.872415},
	{ID: "373", Name: "Al Qibary Bridge", Lat: 31.176825, Lon: 29.879121},
	{ID: "375", Name: "Fatma Al Zahraa - Marsa Matrouh Rd", Lat: 31.108534, Lon: 29.785294},
	{ID: "377", Name: "Agamy Star", Lat: 31.110251, Lon: 29.787984},
	{ID: "379", Name: "Al Bitash", Lat: 31.114477, Lon: 29.794305},
	{ID: "382", Name: "Shahr Al Asal", Lat: 31.133050, Lon: 29.783860},
	{ID: "383", Name: "Port Gate", Lat: 31.122073, Lon: 29.805347},
	{ID: "385", Name: "Royal Complex Hall", Lat: 31.128322, Lon: 29.813366},
	{ID: "387", Name: "Fahmy Restaurant", Lat: 31.133528, Lon: 29.819134},
	{ID: "388", Name: "Al Mohandes Mall", Lat: 31.135012, Lon: 29.821644},
	{ID: "389", Name: "Mostaamara", Lat: 31.065189, Lon: 29.816408},
	{ID: "391", Name: "Abdel Kader Entrance", Lat: 31.078725, Lon: 29.842012},
	{ID: "393", Name: "Abdel Kader Station", Lat: 31.073021, Lon: 29.850206},
	{ID: "395", Name: "Toshky Entrance", Lat: 31.091200, Lon: 29.852864},
	{ID: "397", Name: "Abis 8", Lat: 31.127255, Lon: 29.942771},
	{ID: "398", Name: "High Speed Rail Station", Lat: 31.153356, Lon: 29.922601},
	{ID: "400", Name: "Karmouz Hospital", Lat: 31.187331, Lon: 29.894223},
	{ID: "402", Name: "Alexandria Stadium", Lat: 31.196257, Lon: 29.912830},
	{ID: "404", Name: "Moharam Bek Bridge", Lat: 31.192872, Lon: 29.923180},
	{ID: "406", Name: "Suez Canal Pedestrian Bridge", Lat: 31.195490, Lon: 29.920153},
	{ID: "409", Name: "Bab Sharq", Lat: 31.201252, Lon: 29.915987},
	{ID: "412", Name: "Rahman Mosque", Lat: 31.205654, Lon: 29.909955},
	{ID: "413", Name: "Misr Gas Station - Ibrahimeya", Lat: 31.207772, Lon: 29.929426},
	{ID: "415", Name: "Sharqi Water Station", Lat: 31.200104, Lon: 29.919192},
	{ID: "416", Name: "Hadra", Lat: 31.201377, Lon: 29.93336},
	{ID: "418", Name: "Kabo", Lat: 31.199118, Lon: 29.933344},
	{ID: "420", Name: "Karmus", Lat: 31.179512, Lon: 29.901565},
	{ID: "423", Name: "Moharam Bek", Lat: 31.183812, Lon: 29.926513},
	{ID: "425", Name: "El Mawqaf El Geded", Lat: 31.180134, Lon: 29.913627},
	{ID: "429", Name: "Nozha Administration", Lat: 31.188251, Lon: 29.938024},
	{ID: "431", Name: "Seka Hadeed Bridge", Lat: 31.197434, Lon: 29.953859},
	{ID: "434", Name: "Navy Police Station", Lat: 31.124783, Lon: 29.894353},
	{ID: "436", Name: "Maks Post Office", Lat: 31.151076, Lon: 29.841783},
	{ID: "438", Name: "Italian Hospital", Lat: 31.199889, Lon: 29.925672},
	{ID: "439", Name: "Mazroa Gold", Lat: 31.232776, Lon: 29.961750},
	{ID: "440", Name: "Victoria Station", Lat: 31.249111, Lon: 29.980477},
	{ID: "441", Name: "Baheeg Square", Lat: 30.901623, Lon: 29.544311},
	{ID: "442", Name: "Al-Milaha", Lat: 31.263673, Lon: 30.028506},
	{ID: "443", Name: "Egyptian Red Crescent - Bakus", Lat: 31.230842, Lon: 29.972046},
	{ID: "444", Name: "El-Rassafa", Lat: 31.191188, Lon: 29.91891},
	{ID: "445", Name: "El Awayed", Lat: 31.218703, Lon: 29.994491},
	{ID: "446", Name: "Al Seyouf", Lat: 31.241104, Lon: 29.997384},
	{ID: "447", Name: "Falaki - Al Seyouf", Lat: 31.241375, Lon: 29.998826},
}
