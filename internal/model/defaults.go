package model

import "fmt"

func numbered(prefix string, titles ...string) []Chapter {
	out := make([]Chapter, len(titles))
	for i, t := range titles {
		out[i] = Chapter{ID: fmt.Sprintf("%s%d", prefix, i+1), Title: t}
	}
	return out
}

// DefaultSyllabus is the built-in curriculum used when no syllabus-state
// slot exists yet. Roganidana ships with its first chapter already marked
// in-progress.
func DefaultSyllabus() SyllabusState {
	dravyaguna := numbered("dg",
		"Dravya", "Guna", "Rasa", "Vipaka", "Virya", "Prabhava",
		"Interrelation of Rasa-Guna-Virya-Vipaka-Prabhava", "Karma",
		"Principles of General Pharmacology", "Karmas of Dashemani Gana",
		"Mishraka Gana", "Nomenclature of Dravya",
		"Prashasta Bheshaja & Bheshaja Pariksha",
		"Dravyasangrahana & Drug Collection (GFCP)",
		"GCP, Seed Bank, RET Plants", "Abhava Pratinidhi Dravya (Substitutes)",
		"Extract Techniques (Aqueous & Alcoholic)",
		"Adverse Drug Reaction & Pharmacovigilance",
		"Regulatory Bodies (NMPB, CCRAS, API, GCTM, PCIMH)",
		"Vrikshayurveda & Ethnomedicine",
		"Network Pharmacology & Bioinformatics",
		"Amalaki", "Aragwadha", "Arjuna", "Ashoka", "Ashwagandha", "Ativisha",
		"Bala", "Beejaka", "Bhallataka", "Bharangi", "Bhrungaraja",
		"Bhumyamalaki", "Bilva", "Brahmi", "Chandana", "Chitraka", "Dadima",
		"Dhataki", "Dhamasa", "Eranda", "Gokshura", "Guduchi", "Guggulu",
		"Haridra", "Haritaki", "Hingu", "Jambu", "Jatamansi", "Jyotishmati",
		"Kanchanara", "Kantakari", "Kapikachhu", "Karkatshrungi", "Katuki",
		"Khadira", "Kumari", "Kutaja", "Latakaranja", "Lodhra", "Agnimanth",
		"Ahiphena (NK)", "Ajamoda (DK)", "Apamarga (DK)", "Asthishrunkhala",
		"Bakuchi", "Bruhati", "Chakramarda", "Dhanyaka", "Ela", "Gambhari",
		"Japa", "Jatiphala", "Jeeraka (DK)", "Kalamegha", "Kampillaka",
		"Kulatha (NK)", "Kumkum", "Lajjalu", "Lavanga", "Madanphala",
		"Mandukaparni", "Manjishta", "Maricha", "Meshashrungi", "Methika",
		"Musta", "Nagkeshar", "Nimba", "Nirgundi", "Palasha", "Pashanabheda",
		"Patha", "Pippali", "Punarnava", "Rasna", "Rasona", "Sarapagandha",
		"Sairayak", "Sariva", "Shallaki", "Shalmali(Mocharasa)",
		"Shankhapushpi", "Shatavari", "Shigru", "Shunthi", "Talisapatra (NK)",
		"Trivrut", "Tulasi", "Twak", "Usheera", "Vacha", "Varuna", "Vasa",
		"Vatsanabha", "Vibhitaki", "Vidanga", "Yashtimadhu",
	)

	roganidana := numbered("ro",
		"Nidan Panchak Overview", "Jwara Nidana (Fever)",
		"Pandu Roga (Anemia)", "Prameha (Diabetes)",
	)
	roganidana[0].IsInProgress = true

	return SyllabusState{Subjects: []Subject{
		{Name: "Dravyaguna", Color: "emerald", Chapters: dravyaguna},
		{Name: "Rasashastra", Color: "fuchsia", Chapters: numbered("r",
			"Parada (Mercury) Processing", "Yantras (Instruments)",
			"Musa Vijnana (Crucibles)", "Bhasma Pariksha", "Ratna & Uparanta",
		)},
		{Name: "Swasthavritta", Color: "blue", Chapters: numbered("s",
			"Dinacharya: Brahma Muhurta", "Ritucharya: Visarga Kala",
			"Adharaniya Vega", "Nidra (Sleep) Physiology",
		)},
		{Name: "Roganidana", Color: "orange", Chapters: roganidana},
		{Name: "Samhita", Color: "cyan", Chapters: numbered("sa",
			"Charaka Sutra Ch 1: Dirghanjivitiya",
			"Sushruta Sutra Ch 1: Vedotpatti",
			"Ashtanga Hridaya Sutra Ch 1", "Tantrayukti",
		)},
		{Name: "Agadatantra", Color: "rose", Chapters: numbered("ag",
			"Classification of Visha", "Visha Vega (Impulses)",
			"Sarpa Visha (Snake Bite)", "Dushi Visha (Latent Poison)",
		)},
	}}
}
