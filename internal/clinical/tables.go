package clinical

// checklistSeed is a rule-table row before it is stamped with the
// yes_no_notes type.
type checklistSeed struct {
	symptom   string
	category  string
	notesHint string
}

// baseChecklist applies to every case.
var baseChecklist = []checklistSeed{
	{"Fever is continuous (no breaks)", "general", "e.g., constant vs up/down"},
	{"Fever spikes at certain times daily", "general", "Mention time of spikes"},
	{"Chills or shivering present", "general", ""},
	{"Vomiting even without eating", "gastrointestinal", ""},
	{"Vomiting only after food", "gastrointestinal", ""},
	{"Stool watery", "gastrointestinal", ""},
	{"Stool with mucus", "gastrointestinal", ""},
	{"Stool with blood", "gastrointestinal", ""},
	{"Abdominal pain constant", "gastrointestinal", ""},
	{"Abdominal pain comes in waves (cramps)", "gastrointestinal", ""},
	{"Pain spreads to back/shoulder", "pain", ""},
	{"Rash on skin", "dermatological", ""},
	{"Yellowing of eyes/skin", "general", ""},
	{"Severe headache", "neurological", ""},
	{"Joint or muscle pain", "musculoskeletal", ""},
	{"Recent outside food / street food", "risk_factors", "Give date/place"},
	{"Recent travel", "risk_factors", "Where/when"},
	{"Contact with someone sick", "risk_factors", "Who/when"},
}

// caseChecklists are keyed by intake case type.
var caseChecklists = map[string][]checklistSeed{
	"accident": {
		{"Loss of consciousness", "neurological", "How long"},
		{"Memory loss around the event", "neurological", ""},
		{"Confusion or disorientation", "neurological", ""},
		{"Difficulty speaking clearly", "neurological", ""},
		{"Numbness or tingling", "neurological", "Where"},
		{"Vision changes", "neurological", "Describe"},
		{"Difficulty moving limbs", "musculoskeletal", "Which limbs"},
		{"Visible deformity", "physical", "Location"},
		{"Swelling at injury site", "physical", ""},
		{"Bruising or discoloration", "physical", "Color/location"},
	},
	"infection": {
		{"Known outbreak in area", "epidemiological", "What disease"},
		{"Others in household sick", "epidemiological", "How many"},
		{"Exposure to animals", "risk_factors", "What animals"},
		{"Insect or tick bites", "risk_factors", "When/where"},
		{"Drinking untreated water", "risk_factors", "Source"},
		{"Night sweats", "general", "How often"},
		{"Swollen lymph nodes", "general", "Location"},
		{"Difficulty swallowing", "throat", ""},
		{"Cough with blood", "respiratory", "Amount"},
		{"Rapid breathing", "respiratory", ""},
	},
	"sick": {
		{"Gradual onset over days", "temporal", "How many days"},
		{"Sudden onset within hours", "temporal", "Exact time"},
		{"Symptoms getting worse", "temporal", "How fast"},
		{"Previous similar episodes", "history", "When"},
		{"Family history of similar illness", "history", "Who"},
		{"Taking any medications", "medications", "List all"},
		{"Missed medication doses", "medications", "Which ones"},
		{"New medications started", "medications", "When started"},
		{"Stress or emotional changes", "psychosocial", "What kind"},
	},
	"addiction": {
		{"Withdrawal symptoms", "addiction", "Which symptoms"},
		{"Craving for substance", "addiction", "How strong"},
		{"Last substance use", "addiction", "When exactly"},
		{"Amount typically used", "addiction", "Daily amount"},
		{"Shaking or tremors", "neurological", "Which parts"},
		{"Anxiety or panic", "psychological", "Severity"},
		{"Hallucinations", "psychological", "Visual/auditory"},
		{"Sleep disturbances", "general", "How many hours"},
		{"Loss of appetite", "general", "For how long"},
		{"Rapid heart rate", "cardiovascular", ""},
	},
}

// keywordChecklist adds rows when any keyword appears in a selected symptom.
type keywordChecklist struct {
	keywords []string
	rows     []checklistSeed
}

var symptomChecklists = []keywordChecklist{
	{
		keywords: []string{"pain", "ache", "hurt"},
		rows: []checklistSeed{
			{"Pain radiates to other areas", "pain", "Where"},
			{"Pain worse with movement", "pain", "Which movements"},
			{"Pain relief with rest", "pain", "How much relief"},
		},
	},
	{
		keywords: []string{"cough", "breathing"},
		rows: []checklistSeed{
			{"Cough produces phlegm", "respiratory", "Color/amount"},
			{"Shortness of breath at rest", "respiratory", ""},
			{"Wheezing sounds", "respiratory", "When"},
			{"Chest tightness", "respiratory", ""},
		},
	},
	{
		keywords: []string{"fever", "temperature"},
		rows: []checklistSeed{
			{"Fever measured with thermometer", "general", "Exact temperature"},
			{"Fever responds to medication", "general", "Which medication"},
			{"Fever pattern changes", "general", "How"},
		},
	},
}

// narrativeChecklists add a single row when the free text mentions a keyword.
var narrativeChecklists = []struct {
	keywords []string
	row      checklistSeed
}{
	{[]string{"dizziness", "dizzy"}, checklistSeed{"Dizziness when standing up", "neurological", "How severe"}},
	{[]string{"fatigue", "tired"}, checklistSeed{"Fatigue interferes with daily activities", "general", "What activities"}},
}

// ChecklistCategories are the categories a generated checklist row may use.
var ChecklistCategories = []string{
	"general", "gastrointestinal", "respiratory", "cardiovascular", "neurological",
	"musculoskeletal", "dermatological", "risk_factors", "history", "medications",
	"psychological", "temporal", "epidemiological", "physical", "pain", "throat",
}

// labelRule maps a symptom label to its trigger keywords and feature probes.
type labelRule struct {
	label    string
	keywords []string
	features []string
}

// labelRules is ordered; extraction reports labels in this order.
var labelRules = []labelRule{
	{
		label:    "fever",
		keywords: []string{"fever", "temperature", "hot", "burning up", "feverish"},
		features: []string{
			"Did you check temperature with thermometer?",
			"How many times has fever come in a day?",
			"Does fever come every day at least twice?",
			"What is the highest temperature recorded?",
			"Does fever respond to paracetamol/acetaminophen?",
		},
	},
	{
		label:    "chills_shivering",
		keywords: []string{"chills", "shivering", "shaking", "cold", "trembling"},
		features: []string{
			"Do chills come along with fever?",
			"Do you feel sweating after chills?",
			"How long do chills episodes last?",
			"Do chills happen at specific times?",
		},
	},
	{
		label:    "sweating",
		keywords: []string{"sweating", "perspiration", "night sweats", "profuse sweating"},
		features: []string{
			"Is sweating mainly at night?",
			"Does sweating occur with fever?",
			"Is sweating excessive even when cool?",
			"Does sweating soak through clothes/bedding?",
		},
	},
	{
		label:    "muscle_pain",
		keywords: []string{"muscle pain", "body ache", "myalgia", "body pain", "muscle ache"},
		features: []string{
			"Is muscle pain all over body or specific areas?",
			"Does muscle pain worsen with movement?",
			"Is pain constant or comes in waves?",
			"Does pain respond to pain medication?",
		},
	},
	{
		label:    "joint_pain",
		keywords: []string{"joint pain", "arthralgia", "knee pain", "elbow pain", "wrist pain"},
		features: []string{
			"Which joints are affected?",
			"Is joint pain worse in morning or evening?",
			"Any visible swelling in joints?",
			"Does joint pain limit movement?",
		},
	},
	{
		label:    "headache",
		keywords: []string{"headache", "head pain", "migraine", "head ache"},
		features: []string{
			"Where exactly is headache located?",
			"Is headache throbbing or constant pressure?",
			"Does headache worsen with light/sound?",
			"How severe is headache on scale 1-10?",
		},
	},
	{
		label:    "weakness",
		keywords: []string{"weakness", "fatigue", "tired", "exhaustion", "weak", "energy loss"},
		features: []string{
			"Is weakness generalized or specific body parts?",
			"Does weakness interfere with daily activities?",
			"Is weakness worse at certain times?",
			"Any difficulty getting up from sitting/lying?",
		},
	},
	{
		label:    "nausea_vomiting",
		keywords: []string{"nausea", "vomiting", "feeling sick", "throwing up", "sick feeling"},
		features: []string{
			"Does vomiting occur with or without eating?",
			"How many times vomiting per day?",
			"Is nausea constant or comes in waves?",
			"What triggers the nausea/vomiting?",
		},
	},
	{
		label:    "loss_of_appetite",
		keywords: []string{"loss of appetite", "no appetite", "not hungry", "food aversion"},
		features: []string{
			"Complete loss of appetite or reduced?",
			"Any specific foods you can tolerate?",
			"How much weight loss if any?",
			"When did appetite loss start?",
		},
	},
}

// correlationRule lists labels that commonly co-occur with a detected label.
type correlationRule struct {
	high      []string
	moderate  []string
	questions []string
}

var correlationRules = map[string]correlationRule{
	"fever": {
		high:     []string{"chills_shivering", "sweating", "weakness", "muscle_pain", "headache"},
		moderate: []string{"nausea_vomiting", "loss_of_appetite"},
		questions: []string{
			"Does fever occur together with chills/shivering?",
			"Do you experience sweating when fever breaks?",
			"Is body ache/muscle pain present with fever?",
		},
	},
	"chills_shivering": {
		high:     []string{"fever", "sweating"},
		moderate: []string{"weakness", "muscle_pain"},
		questions: []string{
			"Do chills always come with fever?",
			"Does sweating follow after chills episode?",
			"Do you feel weak during chills?",
		},
	},
	"nausea_vomiting": {
		high:     []string{"loss_of_appetite", "weakness"},
		moderate: []string{"fever", "headache"},
		questions: []string{
			"Did loss of appetite start with nausea?",
			"Does vomiting worsen weakness?",
			"Is nausea worse with fever episodes?",
		},
	},
}

// intensityKeywords mark symptoms that are rated by intensity rather than
// frequency.
var intensityKeywords = []string{"pain", "ache", "hurt", "discomfort", "fatigue", "tired", "exhaustion", "weakness"}

var (
	onsetOptions = []string{
		"Sudden onset - appeared within minutes",
		"Gradual onset - developed over hours",
		"Started days ago and persisting",
		"Started weeks/months ago",
		"Recurring episodes - comes and goes",
		"Daily at specific times (morning/evening)",
		"Triggered by specific activities",
		"Constant since it started",
	}
	intensityOptions = []string{
		"Mild intensity - lasts few minutes",
		"Mild intensity - lasts hours",
		"Moderate intensity - brief episodes",
		"Moderate intensity - lasts several hours",
		"Severe intensity - short bursts",
		"Severe intensity - prolonged episodes",
		"Very severe - debilitating when present",
		"Varies greatly in intensity and duration",
	}
	frequencyOptions = []string{
		"Constant and continuous",
		"Several times daily",
		"Once daily at regular times",
		"Few times per week",
		"Intermittent with no clear pattern",
		"Only during specific activities",
		"Mainly at night or morning",
		"Triggered by certain situations",
	}
	narrativeOnsetOptions = []string{
		"All started suddenly at the same time",
		"Appeared gradually over days/weeks",
		"Different symptoms started at different times",
		"Symptoms come and go together",
		"Some constant, others intermittent",
		"Mainly occur at specific times of day",
		"Triggered by specific situations",
		"Present for months/years",
	}
	narrativeSeverityOptions = []string{
		"Mild - barely noticeable, no impact on activities",
		"Mild to moderate - some discomfort but manageable",
		"Moderate - interferes with some daily activities",
		"Moderate to severe - significant impact on work/life",
		"Severe - greatly limits daily functioning",
		"Very severe - unable to perform normal activities",
		"Severity varies greatly throughout the day",
		"Progressive worsening over time",
	}
)
