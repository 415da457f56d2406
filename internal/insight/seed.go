package insight

// types seeds the sixteen profiles. Content is intentionally compact;
// the result screen and exports quote it verbatim.
var types = map[string]TypeInsight{
	"ISTJ": {
		Code: "ISTJ", Title: "The Inspector", Tagline: "Practical, dependable, thorough",
		Overview: "Quiet and systematic, ISTJs value facts, order, and follow-through. They take commitments seriously and work steadily toward what they have promised.",
		Strengths:  []string{"Reliable under pressure", "Strong attention to detail", "Honors commitments"},
		Challenges: []string{"Can resist change", "May overlook emotional cues"},
		Careers:    []string{"Accountant", "Operations manager", "Systems administrator"},
	},
	"ISFJ": {
		Code: "ISFJ", Title: "The Protector", Tagline: "Warm, conscientious, devoted",
		Overview: "ISFJs combine careful observation with quiet loyalty. They remember what matters to people and work behind the scenes to keep things running smoothly.",
		Strengths:  []string{"Supportive and patient", "Meticulous and practical", "Strong sense of duty"},
		Challenges: []string{"Reluctant to say no", "Avoids necessary conflict"},
		Careers:    []string{"Nurse", "Teacher", "Archivist"},
	},
	"INFJ": {
		Code: "INFJ", Title: "The Counselor", Tagline: "Insightful, principled, quietly intense",
		Overview: "INFJs look for meaning and pattern in people and events. They hold strong inner convictions and move toward a long-range vision of how things ought to be.",
		Strengths:  []string{"Deep insight into people", "Committed to values", "Creative long-range thinking"},
		Challenges: []string{"Prone to burnout", "Perfectionistic about ideals"},
		Careers:    []string{"Counselor", "Writer", "Researcher"},
	},
	"INTJ": {
		Code: "INTJ", Title: "The Mastermind", Tagline: "Strategic, independent, exacting",
		Overview: "INTJs build internal models of how systems work and push relentlessly to improve them. They trust analysis over convention and prefer competence to consensus.",
		Strengths:  []string{"Long-range strategic vision", "Independent judgment", "High standards"},
		Challenges: []string{"Impatient with inefficiency", "Can seem aloof"},
		Careers:    []string{"Engineer", "Scientist", "Strategy consultant"},
	},
	"ISTP": {
		Code: "ISTP", Title: "The Craftsman", Tagline: "Observant, hands-on, unflappable",
		Overview: "ISTPs understand how things work by taking them apart. Calm in a crisis, they act decisively when action is needed and otherwise conserve their energy.",
		Strengths:  []string{"Cool head in emergencies", "Mechanical aptitude", "Efficient problem solving"},
		Challenges: []string{"Easily bored by routine", "Keeps others at a distance"},
		Careers:    []string{"Mechanic", "Pilot", "Forensic analyst"},
	},
	"ISFP": {
		Code: "ISFP", Title: "The Composer", Tagline: "Gentle, aesthetic, present-focused",
		Overview: "ISFPs live in the moment with a strong personal code they rarely announce. They express care through actions and notice sensory detail others walk past.",
		Strengths:  []string{"Quiet empathy", "Aesthetic sensibility", "Adaptable and easygoing"},
		Challenges: []string{"Avoids long-range planning", "Undersells own work"},
		Careers:    []string{"Designer", "Veterinarian", "Chef"},
	},
	"INFP": {
		Code: "INFP", Title: "The Healer", Tagline: "Idealistic, empathetic, imaginative",
		Overview: "INFPs measure life against deeply held values. Outwardly flexible, they are immovable on the few things that matter most and imaginative about everything else.",
		Strengths:  []string{"Strong personal values", "Imaginative and open", "Sees potential in people"},
		Challenges: []string{"Takes criticism personally", "Loses track of practicalities"},
		Careers:    []string{"Writer", "Psychologist", "Nonprofit director"},
	},
	"INTP": {
		Code: "INTP", Title: "The Architect", Tagline: "Analytical, curious, precise",
		Overview: "INTPs chase logical consistency wherever it leads. They enjoy frameworks more than facts and would rather understand a problem completely than solve it quickly.",
		Strengths:  []string{"Rigorous analysis", "Original theoretical insight", "Intellectual honesty"},
		Challenges: []string{"Dismissive of the 'obvious'", "Stalls on implementation"},
		Careers:    []string{"Software developer", "Mathematician", "Philosopher"},
	},
	"ESTP": {
		Code: "ESTP", Title: "The Dynamo", Tagline: "Energetic, pragmatic, bold",
		Overview: "ESTPs read the immediate situation faster than anyone in the room and act on it. They learn by doing, negotiate on the fly, and treat risk as information.",
		Strengths:  []string{"Decisive in the moment", "Persuasive and direct", "Thrives under pressure"},
		Challenges: []string{"Impatient with theory", "Underestimates long-term costs"},
		Careers:    []string{"Entrepreneur", "Paramedic", "Sales director"},
	},
	"ESFP": {
		Code: "ESFP", Title: "The Performer", Tagline: "Playful, generous, spontaneous",
		Overview: "ESFPs bring warmth and energy wherever they go. Practical and observant, they make work feel like play and are at their best with people around.",
		Strengths:  []string{"Lifts group morale", "Practical common sense", "Adapts instantly"},
		Challenges: []string{"Avoids unpleasant topics", "Distracted by the next thing"},
		Careers:    []string{"Event planner", "Coach", "Primary teacher"},
	},
	"ENFP": {
		Code: "ENFP", Title: "The Champion", Tagline: "Enthusiastic, inventive, people-centered",
		Overview: "ENFPs see possibilities in everything and everyone. They start more than they finish, connect ideas across domains, and draw others into their enthusiasm.",
		Strengths:  []string{"Infectious enthusiasm", "Creative connections", "Reads people well"},
		Challenges: []string{"Follow-through fades", "Overcommits"},
		Careers:    []string{"Journalist", "Product manager", "Creative director"},
	},
	"ENTP": {
		Code: "ENTP", Title: "The Visionary", Tagline: "Quick, inventive, argumentative",
		Overview: "ENTPs test ideas by arguing them, including positions they do not hold. Rules are starting points for negotiation; problems are puzzles waiting for a cleverer angle.",
		Strengths:  []string{"Rapid ideation", "Sharp debate instincts", "Thrives on change"},
		Challenges: []string{"Argues for sport", "Bored by maintenance work"},
		Careers:    []string{"Founder", "Lawyer", "R&D lead"},
	},
	"ESTJ": {
		Code: "ESTJ", Title: "The Supervisor", Tagline: "Organized, decisive, direct",
		Overview: "ESTJs bring structure to chaos. They set clear expectations, follow established procedures that work, and take responsibility for delivering results.",
		Strengths:  []string{"Gets things done", "Clear, direct communication", "Natural organizer"},
		Challenges: []string{"Inflexible about process", "Blunt past the point of useful"},
		Careers:    []string{"Project manager", "Military officer", "Judge"},
	},
	"ESFJ": {
		Code: "ESFJ", Title: "The Provider", Tagline: "Sociable, caring, orderly",
		Overview: "ESFJs hold communities together. Attentive to needs and traditions, they create environments where people feel looked after and know what to expect.",
		Strengths:  []string{"Builds loyal teams", "Reliable and organized", "Attends to everyone's needs"},
		Challenges: []string{"Needs approval", "Uneasy with criticism of the group"},
		Careers:    []string{"HR manager", "Nurse", "Community organizer"},
	},
	"ENFJ": {
		Code: "ENFJ", Title: "The Mentor", Tagline: "Charismatic, supportive, organized",
		Overview: "ENFJs grow people. They sense what a group needs, articulate a direction others want to follow, and invest personally in everyone's development.",
		Strengths:  []string{"Inspiring communicator", "Develops others", "Organizes around people"},
		Challenges: []string{"Overextends for others", "Avoids hard feedback"},
		Careers:    []string{"Teacher", "Executive coach", "Communications lead"},
	},
	"ENTJ": {
		Code: "ENTJ", Title: "The Commander", Tagline: "Driven, strategic, frank",
		Overview: "ENTJs organize people and resources toward long-range goals. They spot inefficiency instantly, decide quickly, and expect the same decisiveness from others.",
		Strengths:  []string{"Natural leadership", "Strategic and decisive", "High drive"},
		Challenges: []string{"Steamrolls quieter voices", "Impatient with feelings"},
		Careers:    []string{"Executive", "Management consultant", "Program director"},
	},
}
