// Package content holds the curated learning catalog: word categories,
// phrases, scripted conversations, the phonetic alphabet guide and the voice
// option table. The tables are static; the rest of the system treats them as
// read-only input data.
package content

type Word struct {
	Gujarati      string `json:"gujarati"`
	Roman         string `json:"roman"`
	English       string `json:"english"`
	Pronunciation string `json:"pronunciation"`
	Tip           string `json:"tip,omitempty"`
	Swatch        string `json:"color,omitempty"` // color words carry their own swatch
}

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
	Words []Word `json:"words"`
}

type Sentence struct {
	Gujarati      string `json:"gujarati"`
	Roman         string `json:"roman"`
	English       string `json:"english"`
	Pronunciation string `json:"pronunciation"`
	Tip           string `json:"tip,omitempty"`
	// TTSText overrides Gujarati for synthesis, e.g. to drop fill-in blanks.
	TTSText string `json:"ttsText,omitempty"`
}

// SpeakText is what actually goes to the synthesizer.
func (s Sentence) SpeakText() string {
	if s.TTSText != "" {
		return s.TTSText
	}
	return s.Gujarati
}

type Line struct {
	Speaker       string `json:"speaker"`
	Gujarati      string `json:"gujarati"`
	Roman         string `json:"roman"`
	English       string `json:"english"`
	Pronunciation string `json:"pronunciation"`
}

type Conversation struct {
	Title string `json:"title"`
	Emoji string `json:"emoji"`
	Lines []Line `json:"lines"`
}

type Letter struct {
	Letter  string `json:"letter"`
	Roman   string `json:"roman"`
	Sound   string `json:"sound"`
	Example string `json:"example"`
}

type VoiceOption struct {
	Label string `json:"label"`
	Name  string `json:"name"`
	Tier  string `json:"tier"`
	Desc  string `json:"desc"`
}

// VoiceOptions lists the selectable gu-IN voices, one per tier and gender.
var VoiceOptions = []VoiceOption{
	{Label: "Standard Female", Name: "gu-IN-Standard-A", Tier: "standard", Desc: "4M chars/mo free"},
	{Label: "Standard Male", Name: "gu-IN-Standard-B", Tier: "standard", Desc: "4M chars/mo free"},
	{Label: "WaveNet Female", Name: "gu-IN-Wavenet-A", Tier: "wavenet", Desc: "1M chars/mo free · Better quality"},
	{Label: "WaveNet Male", Name: "gu-IN-Wavenet-B", Tier: "wavenet", Desc: "1M chars/mo free · Better quality"},
}

func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

var Categories = []Category{
	{
		ID: "greetings", Label: "Greetings", Emoji: "🙏", Color: "#E8734A",
		Words: []Word{
			{Gujarati: "નમસ્તે", Roman: "Namaste", English: "Hello", Pronunciation: "nuh-muh-STAY", Tip: "Emphasis on the last syllable. 'Na' as in 'nut', 'ma' as in 'must', 'ste' rhymes with 'stay'."},
			{Gujarati: "કેમ છો", Roman: "Kem Chho", English: "How are you?", Pronunciation: "KEM choh", Tip: "'Kem' rhymes with 'gem'. 'Chho' — the 'chh' is an aspirated 'ch', like 'ch' with a puff of air."},
			{Gujarati: "મજામાં", Roman: "Majamaan", English: "I'm fine", Pronunciation: "muh-jaa-MAAN", Tip: "'Ma' as in 'must', 'ja' as in 'jar', 'maan' rhymes with 'on' but longer."},
			{Gujarati: "આવજો", Roman: "Aavjo", English: "Goodbye", Pronunciation: "AAV-joh", Tip: "'Aav' rhymes with 'cov' in 'cove'. 'Jo' as in 'Joe'. Stress the first syllable."},
			{Gujarati: "ધન્યવાદ", Roman: "Dhanyavaad", English: "Thank you", Pronunciation: "dhun-yuh-VAAD", Tip: "'Dh' is a breathy 'd' — say 'd' with air. 'Vaad' rhymes with 'rod' but longer."},
			{Gujarati: "માફ કરો", Roman: "Maaf Karo", English: "Sorry / Excuse me", Pronunciation: "MAAF kuh-ROH", Tip: "'Maaf' rhymes with 'cough'. 'Karo' — 'ka' as in 'cut', 'ro' as in 'row'."},
			{Gujarati: "હા", Roman: "Haa", English: "Yes", Pronunciation: "HAA", Tip: "Like 'ha' in 'hall' but drawn out slightly."},
			{Gujarati: "ના", Roman: "Naa", English: "No", Pronunciation: "NAA", Tip: "Like 'nah' but slightly longer."},
		},
	},
	{
		ID: "family", Label: "Family", Emoji: "👨‍👩‍👧‍👦", Color: "#6B8E4E",
		Words: []Word{
			{Gujarati: "મમ્મી", Roman: "Mummy", English: "Mom", Pronunciation: "MUM-mee", Tip: "Just like the English 'mummy'!"},
			{Gujarati: "પપ્પા", Roman: "Pappa", English: "Dad", Pronunciation: "PUP-paa", Tip: "Like 'papa' but with a shorter first 'a'."},
			{Gujarati: "ભાઈ", Roman: "Bhai", English: "Brother", Pronunciation: "BHAI", Tip: "'Bh' is a breathy 'b'. The 'ai' sounds like 'eye'. Together: 'b-HIGH'."},
			{Gujarati: "બહેન", Roman: "Bahen", English: "Sister", Pronunciation: "buh-HEN", Tip: "'Ba' as in 'but', 'hen' as in the bird. Stress on 'hen'."},
			{Gujarati: "દાદા", Roman: "Dada", English: "Grandfather (paternal)", Pronunciation: "DAA-daa", Tip: "Both syllables sound like 'da' in 'dark'. Even stress."},
			{Gujarati: "દાદી", Roman: "Dadi", English: "Grandmother (paternal)", Pronunciation: "DAA-dee", Tip: "'Daa' as in 'dark', 'dee' as in the letter D."},
			{Gujarati: "નાના", Roman: "Nana", English: "Grandfather (maternal)", Pronunciation: "NAA-naa", Tip: "Like 'nah-nah'. Even, gentle stress."},
			{Gujarati: "નાની", Roman: "Nani", English: "Grandmother (maternal)", Pronunciation: "NAA-nee", Tip: "'Naa' as in 'nah', 'nee' as in 'knee'."},
		},
	},
	{
		ID: "numbers", Label: "Numbers", Emoji: "🔢", Color: "#4A90D9",
		Words: []Word{
			{Gujarati: "એક", Roman: "Ek", English: "One (1)", Pronunciation: "EK", Tip: "Rhymes with 'check' without the 'ch'."},
			{Gujarati: "બે", Roman: "Be", English: "Two (2)", Pronunciation: "BAY", Tip: "Sounds exactly like the English word 'bay'."},
			{Gujarati: "ત્રણ", Roman: "Tran", English: "Three (3)", Pronunciation: "TRUHN", Tip: "The 'tr' blends together. Rhymes with 'fun' but starts with 'tr'."},
			{Gujarati: "ચાર", Roman: "Chaar", English: "Four (4)", Pronunciation: "CHAAR", Tip: "Like 'char' (as in charcoal) but the 'aa' is held longer."},
			{Gujarati: "પાંચ", Roman: "Paanch", English: "Five (5)", Pronunciation: "PAANCH", Tip: "'Paan' rhymes with 'on', 'ch' is soft at the end."},
			{Gujarati: "છ", Roman: "Chha", English: "Six (6)", Pronunciation: "CHHUH", Tip: "'Chh' is an aspirated 'ch' — say 'ch' with a puff of air, then a short 'uh'."},
			{Gujarati: "સાત", Roman: "Saat", English: "Seven (7)", Pronunciation: "SAAT", Tip: "Like 'sought' but with a clean 'aa' sound, no 'w'."},
			{Gujarati: "આઠ", Roman: "Aath", English: "Eight (8)", Pronunciation: "AATH", Tip: "'Aa' like 'aah' at the dentist, 'th' is a soft dental 't'."},
			{Gujarati: "નવ", Roman: "Nav", English: "Nine (9)", Pronunciation: "NUV", Tip: "Rhymes with 'love' but starts with 'n'."},
			{Gujarati: "દસ", Roman: "Das", English: "Ten (10)", Pronunciation: "DUS", Tip: "Like 'thus' without the 'th'. Short and quick."},
		},
	},
	{
		ID: "colors", Label: "Colors", Emoji: "🎨", Color: "#C24B8B",
		Words: []Word{
			{Gujarati: "લાલ", Roman: "Laal", English: "Red", Pronunciation: "LAAL", Swatch: "#E53935", Tip: "Like 'lull' but with an open 'aa' sound."},
			{Gujarati: "વાદળી", Roman: "Vaadli", English: "Blue", Pronunciation: "VAAD-lee", Swatch: "#1E88E5", Tip: "'Vaad' rhymes with 'rod', 'lee' as in the name Lee."},
			{Gujarati: "લીલો", Roman: "Leelo", English: "Green", Pronunciation: "LEE-loh", Swatch: "#43A047", Tip: "'Lee' as in the name, 'lo' as in 'low'."},
			{Gujarati: "પીળો", Roman: "Peelo", English: "Yellow", Pronunciation: "PEE-loh", Swatch: "#F9A825", Tip: "'Pee' as in the letter P, 'lo' as in 'low'."},
			{Gujarati: "સફેદ", Roman: "Safed", English: "White", Pronunciation: "suh-FED", Swatch: "#90A4AE", Tip: "'Sa' is quick, 'fed' as in the English word. Stress on 'fed'."},
			{Gujarati: "કાળો", Roman: "Kaalo", English: "Black", Pronunciation: "KAA-loh", Swatch: "#37474F", Tip: "'Kaa' as in 'car', 'lo' as in 'low'."},
			{Gujarati: "નારંગી", Roman: "Naarangi", English: "Orange", Pronunciation: "naa-RUN-gee", Swatch: "#FB8C00", Tip: "'Naa' as in 'nah', 'run' as in running, 'gee' as in 'geese'."},
			{Gujarati: "ગુલાબી", Roman: "Gulaabi", English: "Pink", Pronunciation: "goo-LAA-bee", Swatch: "#E91E8C", Tip: "'Goo' as in 'good', 'laa' as in 'la la la', 'bee' as the insect."},
		},
	},
	{
		ID: "animals", Label: "Animals", Emoji: "🐾", Color: "#D4A843",
		Words: []Word{
			{Gujarati: "કૂતરો", Roman: "Kutro", English: "Dog", Pronunciation: "KOO-troh", Tip: "'Koo' as in 'cool', 'tro' — 'tr' blended, 'o' as in 'go'."},
			{Gujarati: "બિલાડી", Roman: "Bilaadi", English: "Cat", Pronunciation: "bi-LAA-dee", Tip: "'Bi' as in 'bit', 'laa' as in 'la', 'dee' as in the letter D."},
			{Gujarati: "ગાય", Roman: "Gaay", English: "Cow", Pronunciation: "GAAY", Tip: "Like 'guy' but with a longer 'aa' sound."},
			{Gujarati: "ઘોડો", Roman: "Ghodo", English: "Horse", Pronunciation: "GHO-doh", Tip: "'Gho' — 'gh' is a breathy 'g', 'o' as in 'go'. 'Do' as in 'dough'."},
			{Gujarati: "પક્ષી", Roman: "Pakshi", English: "Bird", Pronunciation: "PUK-shee", Tip: "'Puk' rhymes with 'book', 'shi' as in 'she'."},
			{Gujarati: "માછલી", Roman: "Maachli", English: "Fish", Pronunciation: "MAACH-lee", Tip: "'Maach' — 'aa' is long, 'ch' is soft. 'Lee' as in the name."},
			{Gujarati: "હાથી", Roman: "Haathi", English: "Elephant", Pronunciation: "HAA-thee", Tip: "'Haa' as in 'ha!', 'thee' as in 'the' with a long 'ee'."},
			{Gujarati: "વાંદરો", Roman: "Vaandro", English: "Monkey", Pronunciation: "VAAN-droh", Tip: "'Vaan' — 'v' is soft, 'aan' rhymes with 'on'. 'Dro' like 'throw'."},
		},
	},
	{
		ID: "food", Label: "Food & Drink", Emoji: "🍛", Color: "#9B59B6",
		Words: []Word{
			{Gujarati: "પાણી", Roman: "Paani", English: "Water", Pronunciation: "PAA-nee", Tip: "'Paa' as in 'pa', 'nee' as in 'knee'."},
			{Gujarati: "દૂધ", Roman: "Doodh", English: "Milk", Pronunciation: "DOODH", Tip: "'Doo' as in 'do', 'dh' is a breathy 'd' at the end."},
			{Gujarati: "રોટલી", Roman: "Rotli", English: "Flatbread / Roti", Pronunciation: "ROHT-lee", Tip: "'Roht' — 'o' as in 'row', soft 't'. 'Lee' as in the name."},
			{Gujarati: "ભાત", Roman: "Bhaat", English: "Rice", Pronunciation: "BHAAT", Tip: "'Bh' is a breathy 'b', 'aat' like 'art' without the 'r'."},
			{Gujarati: "શાક", Roman: "Shaak", English: "Vegetable curry", Pronunciation: "SHAAK", Tip: "'Sh' as in 'shop', 'aak' like 'arc' without the 'r'."},
			{Gujarati: "દાળ", Roman: "Daal", English: "Lentil soup", Pronunciation: "DAAL", Tip: "Like the English word 'doll' but with a long 'aa'."},
			{Gujarati: "ફળ", Roman: "Fal", English: "Fruit", Pronunciation: "FUL", Tip: "Like 'full' but shorter. Quick and crisp."},
			{Gujarati: "મીઠું", Roman: "Meethun", English: "Salt", Pronunciation: "MEE-thoon", Tip: "'Mee' as in 'me', 'thoon' — soft 'th', 'oon' as in 'moon'."},
		},
	},
	{
		ID: "bodyParts", Label: "My Body", Emoji: "🧒", Color: "#2EAF7D",
		Words: []Word{
			{Gujarati: "માથું", Roman: "Maathun", English: "Head", Pronunciation: "MAA-thoon", Tip: "'Maa' as in 'ma', 'thoon' — soft dental 'th', rhymes with 'moon'."},
			{Gujarati: "આંખ", Roman: "Aankh", English: "Eye", Pronunciation: "AANKH", Tip: "'Aan' rhymes with 'on', 'kh' is a rough 'k' from the throat."},
			{Gujarati: "નાક", Roman: "Naak", English: "Nose", Pronunciation: "NAAK", Tip: "Like 'knock' but with a long 'aa' and no 'ck'."},
			{Gujarati: "કાન", Roman: "Kaan", English: "Ear", Pronunciation: "KAAN", Tip: "Like 'con' but with a long 'aa'. Rhymes with 'on'."},
			{Gujarati: "મોઢું", Roman: "Modhun", English: "Mouth", Pronunciation: "MOH-dhoon", Tip: "'Mo' as in 'more', 'dhoon' — breathy 'd', rhymes with 'moon'."},
			{Gujarati: "હાથ", Roman: "Haath", English: "Hand", Pronunciation: "HAATH", Tip: "'Haa' as in 'ha!', 'th' is a soft dental 't'."},
			{Gujarati: "પગ", Roman: "Pag", English: "Foot / Leg", Pronunciation: "PUG", Tip: "Rhymes with 'bug' but starts with 'p'. Short and quick."},
			{Gujarati: "પેટ", Roman: "Pet", English: "Stomach", Pronunciation: "PET", Tip: "Like the English word 'pet'. Simple!"},
		},
	},
	{
		ID: "actions", Label: "Actions", Emoji: "🏃", Color: "#E07B39",
		Words: []Word{
			{Gujarati: "ખાવું", Roman: "Khaavun", English: "To eat", Pronunciation: "KHAA-voon", Tip: "'Kh' is a rough 'k' from the throat. 'Aa' is long. 'Voon' rhymes with 'moon'."},
			{Gujarati: "પીવું", Roman: "Peevun", English: "To drink", Pronunciation: "PEE-voon", Tip: "'Pee' as in the letter P, 'voon' rhymes with 'moon'."},
			{Gujarati: "રમવું", Roman: "Ramvun", English: "To play", Pronunciation: "RUM-voon", Tip: "'Rum' as in the drink, 'voon' rhymes with 'moon'."},
			{Gujarati: "સૂવું", Roman: "Soovun", English: "To sleep", Pronunciation: "SOO-voon", Tip: "'Soo' as in 'soon', 'voon' rhymes with 'moon'."},
			{Gujarati: "જોવું", Roman: "Jovun", English: "To see / look", Pronunciation: "JOH-voon", Tip: "'Jo' as in 'Joe', 'voon' rhymes with 'moon'."},
			{Gujarati: "બોલવું", Roman: "Bolvun", English: "To speak", Pronunciation: "BOHL-voon", Tip: "'Bol' as in 'bowl', 'voon' rhymes with 'moon'."},
			{Gujarati: "ચાલવું", Roman: "Chaalvun", English: "To walk", Pronunciation: "CHAAL-voon", Tip: "'Chaal' — 'ch' as in 'chair', 'aal' like 'all'. 'Voon' rhymes with 'moon'."},
			{Gujarati: "હસવું", Roman: "Hasvun", English: "To laugh", Pronunciation: "HUS-voon", Tip: "'Hus' rhymes with 'bus', 'voon' rhymes with 'moon'."},
		},
	},
}

var Sentences = []Sentence{
	{Gujarati: "મારું નામ ___ છે.", Roman: "Maarun naam ___ chhe.", English: "My name is ___.", Pronunciation: "MAA-roon NAAM ___ CHHEH", Tip: "'Maarun' — possessive 'my'. 'Chhe' — aspirated 'ch', rhymes with 'hay'.", TTSText: "મારું નામ છે."},
	{Gujarati: "મને ભૂખ લાગી છે.", Roman: "Mane bhookh laagi chhe.", English: "I am hungry.", Pronunciation: "muh-NEH BHOOKH LAA-gee CHHEH", Tip: "'Bhookh' — breathy 'bh', 'ookh' like 'book'. 'Laagi' — 'laa' + 'gee'."},
	{Gujarati: "મને તરસ લાગી છે.", Roman: "Mane taras laagi chhe.", English: "I am thirsty.", Pronunciation: "muh-NEH tuh-RUS LAA-gee CHHEH", Tip: "'Taras' — stress on 'rus', like 'bus' with a 't'."},
	{Gujarati: "હું ખુશ છું.", Roman: "Hun khush chhun.", English: "I am happy.", Pronunciation: "HOON KHOOSH CHHOON", Tip: "'Hun' like 'hoon'. 'Khush' — rough 'kh', 'ush' like 'push'. 'Chhun' — aspirated 'ch' + 'oon'."},
	{Gujarati: "આ શું છે?", Roman: "Aa shun chhe?", English: "What is this?", Pronunciation: "AA SHOON CHHEH", Tip: "'Aa' points to 'this'. 'Shun' like 'shoon'. Very useful question!"},
	{Gujarati: "મને રમવું છે.", Roman: "Mane ramvun chhe.", English: "I want to play.", Pronunciation: "muh-NEH RUM-voon CHHEH", Tip: "Literal: 'To me playing is'. Gujarati structures desire differently than English."},
	{Gujarati: "કૃપા કરીને.", Roman: "Krupa karine.", English: "Please.", Pronunciation: "KROO-paa kuh-REE-neh", Tip: "'Kru' blended, 'pa' as in 'pa'. 'Karine' — 'ka' + 'ree' + 'ne'."},
	{Gujarati: "મને મદદ જોઈએ છે.", Roman: "Mane madad joiye chhe.", English: "I need help.", Pronunciation: "muh-NEH muh-DUD JOY-yeh CHHEH", Tip: "'Madad' — same as Hindi/Urdu. 'Joiye' — 'joy' + 'yeh'."},
	{Gujarati: "હું ગુજરાતી શીખી રહ્યો છું.", Roman: "Hun Gujarati shikhi rahyo chhun.", English: "I am learning Gujarati.", Pronunciation: "HOON goo-juh-RAA-tee SHEE-khee ruh-HYOH CHHOON", Tip: "'Shikhi' — learning. 'Rahyo' — ongoing action (like '-ing')."},
	{Gujarati: "તમે ક્યાંથી છો?", Roman: "Tame kyaanthi chho?", English: "Where are you from?", Pronunciation: "tuh-MEH KYAAN-thee CHHOH", Tip: "'Tame' — formal 'you'. 'Kyaanthi' — 'from where'."},
}

var Conversations = []Conversation{
	{
		Title: "Meeting Someone", Emoji: "👋",
		Lines: []Line{
			{Speaker: "A", Gujarati: "નમસ્તે! કેમ છો?", Roman: "Namaste! Kem chho?", English: "Hello! How are you?", Pronunciation: "nuh-muh-STAY! KEM choh?"},
			{Speaker: "B", Gujarati: "નમસ્તે! હું મજામાં છું. તમે?", Roman: "Namaste! Hun majamaan chhun. Tame?", English: "Hello! I'm fine. You?", Pronunciation: "nuh-muh-STAY! HOON muh-jaa-MAAN CHHOON. tuh-MEH?"},
			{Speaker: "A", Gujarati: "હું પણ મજામાં. તમારું નામ શું છે?", Roman: "Hun pan majamaan. Tamaarun naam shun chhe?", English: "I'm fine too. What is your name?", Pronunciation: "HOON PUN muh-jaa-MAAN. tuh-MAA-roon NAAM SHOON CHHEH?"},
			{Speaker: "B", Gujarati: "મારું નામ રાહુલ છે. તમારું?", Roman: "Maarun naam Rahul chhe. Tamaarun?", English: "My name is Rahul. Yours?", Pronunciation: "MAA-roon NAAM RAA-hool CHHEH. tuh-MAA-roon?"},
			{Speaker: "A", Gujarati: "મારું નામ પ્રિયા છે. મળીને આનંદ થયો!", Roman: "Maarun naam Priya chhe. Maline aanand thayo!", English: "My name is Priya. Nice to meet you!", Pronunciation: "MAA-roon NAAM PREE-yaa CHHEH. MUL-ee-neh AA-nund THUH-yoh!"},
		},
	},
	{
		Title: "Dinner Table", Emoji: "🍽️",
		Lines: []Line{
			{Speaker: "Child", Gujarati: "મમ્મી, મને ભૂખ લાગી છે!", Roman: "Mummy, mane bhookh laagi chhe!", English: "Mom, I'm hungry!", Pronunciation: "MUM-mee, muh-NEH BHOOKH LAA-gee CHHEH!"},
			{Speaker: "Mom", Gujarati: "બેસો, જમવાનું તૈયાર છે.", Roman: "Beso, jamvaanun taiyaar chhe.", English: "Sit down, food is ready.", Pronunciation: "BEH-soh, jum-VAA-noon tay-YAAR CHHEH."},
			{Speaker: "Child", Gujarati: "આજે શું બનાવ્યું છે?", Roman: "Aaje shun banaavyun chhe?", English: "What did you make today?", Pronunciation: "AA-jeh SHOON buh-NAAV-yoon CHHEH?"},
			{Speaker: "Mom", Gujarati: "રોટલી, દાળ, ભાત અને શાક.", Roman: "Rotli, daal, bhaat ane shaak.", English: "Roti, lentils, rice, and curry.", Pronunciation: "ROHT-lee, DAAL, BHAAT UH-neh SHAAK."},
			{Speaker: "Child", Gujarati: "વાહ! મને દાળ-ભાત બહુ ભાવે છે!", Roman: "Vaah! Mane daal-bhaat bahu bhaave chhe!", English: "Wow! I love dal-rice!", Pronunciation: "VAAH! muh-NEH DAAL-BHAAT buh-HOO BHAA-veh CHHEH!"},
		},
	},
	{
		Title: "Playing Outside", Emoji: "⚽",
		Lines: []Line{
			{Speaker: "A", Gujarati: "ચાલ, રમવા જઈએ!", Roman: "Chaal, ramvaa jaiye!", English: "Let's go play!", Pronunciation: "CHAAL, rum-VAA JAI-yeh!"},
			{Speaker: "B", Gujarati: "હા! શું રમીશું?", Roman: "Haa! Shun ramishun?", English: "Yes! What shall we play?", Pronunciation: "HAA! SHOON ruh-MEE-shoon?"},
			{Speaker: "A", Gujarati: "ક્રિકેટ રમીએ?", Roman: "Cricket ramiye?", English: "Shall we play cricket?", Pronunciation: "CRICKET ruh-MEE-yeh?"},
			{Speaker: "B", Gujarati: "ના, ફૂટબોલ રમીએ!", Roman: "Naa, football ramiye!", English: "No, let's play football!", Pronunciation: "NAA, FOOTBALL ruh-MEE-yeh!"},
			{Speaker: "A", Gujarati: "ઠીક છે, ચાલ!", Roman: "Theek chhe, chaal!", English: "Okay, let's go!", Pronunciation: "THEEK CHHEH, CHAAL!"},
		},
	},
}

var Alphabet = []Letter{
	{Letter: "અ", Roman: "a", Sound: "uh", Example: "like 'u' in 'but'"},
	{Letter: "આ", Roman: "aa", Sound: "aa", Example: "like 'a' in 'father'"},
	{Letter: "ઇ", Roman: "i", Sound: "i", Example: "like 'i' in 'bit'"},
	{Letter: "ઈ", Roman: "ee", Sound: "ee", Example: "like 'ee' in 'feet'"},
	{Letter: "ઉ", Roman: "u", Sound: "u", Example: "like 'u' in 'put'"},
	{Letter: "ઊ", Roman: "oo", Sound: "oo", Example: "like 'oo' in 'food'"},
	{Letter: "એ", Roman: "e", Sound: "eh", Example: "like 'a' in 'late'"},
	{Letter: "ઐ", Roman: "ai", Sound: "ai", Example: "like 'ai' in 'aisle'"},
	{Letter: "ઓ", Roman: "o", Sound: "oh", Example: "like 'o' in 'go'"},
	{Letter: "ઔ", Roman: "au", Sound: "ow", Example: "like 'ow' in 'cow'"},
	{Letter: "ક", Roman: "ka", Sound: "k", Example: "like 'k' in 'kite'"},
	{Letter: "ખ", Roman: "kha", Sound: "kh", Example: "'k' with a puff of air"},
	{Letter: "ગ", Roman: "ga", Sound: "g", Example: "like 'g' in 'go'"},
	{Letter: "ઘ", Roman: "gha", Sound: "gh", Example: "'g' with a puff of air"},
	{Letter: "ચ", Roman: "cha", Sound: "ch", Example: "like 'ch' in 'chair'"},
	{Letter: "છ", Roman: "chha", Sound: "chh", Example: "'ch' with strong air puff"},
	{Letter: "જ", Roman: "ja", Sound: "j", Example: "like 'j' in 'jump'"},
	{Letter: "ઝ", Roman: "jha/za", Sound: "jh/z", Example: "'j' with breath OR 'z'"},
	{Letter: "ટ", Roman: "ṭa", Sound: "ṭ", Example: "tongue curled back (retroflex)"},
	{Letter: "ઠ", Roman: "ṭha", Sound: "ṭh", Example: "retroflex 't' with air puff"},
	{Letter: "ડ", Roman: "ḍa", Sound: "ḍ", Example: "retroflex 'd' — tongue curled"},
	{Letter: "ઢ", Roman: "ḍha", Sound: "ḍh", Example: "retroflex 'd' with air puff"},
	{Letter: "ત", Roman: "ta", Sound: "t", Example: "dental — tongue touches teeth"},
	{Letter: "થ", Roman: "tha", Sound: "th", Example: "dental 't' with air puff"},
	{Letter: "દ", Roman: "da", Sound: "d", Example: "dental 'd' — tongue on teeth"},
	{Letter: "ધ", Roman: "dha", Sound: "dh", Example: "dental 'd' with air puff"},
	{Letter: "ન", Roman: "na", Sound: "n", Example: "like 'n' in 'name'"},
	{Letter: "પ", Roman: "pa", Sound: "p", Example: "like 'p' in 'pen'"},
	{Letter: "ફ", Roman: "fa/pha", Sound: "f/ph", Example: "like 'f' in 'fun'"},
	{Letter: "બ", Roman: "ba", Sound: "b", Example: "like 'b' in 'bat'"},
	{Letter: "ભ", Roman: "bha", Sound: "bh", Example: "'b' with a puff of air"},
	{Letter: "મ", Roman: "ma", Sound: "m", Example: "like 'm' in 'man'"},
	{Letter: "ય", Roman: "ya", Sound: "y", Example: "like 'y' in 'yes'"},
	{Letter: "ર", Roman: "ra", Sound: "r", Example: "a light tongue tap/flick"},
	{Letter: "લ", Roman: "la", Sound: "l", Example: "like 'l' in 'love'"},
	{Letter: "વ", Roman: "va", Sound: "v/w", Example: "between 'v' and 'w'"},
	{Letter: "શ", Roman: "sha", Sound: "sh", Example: "like 'sh' in 'shop'"},
	{Letter: "ષ", Roman: "ṣha", Sound: "ṣh", Example: "retroflex 'sh'"},
	{Letter: "સ", Roman: "sa", Sound: "s", Example: "like 's' in 'sun'"},
	{Letter: "હ", Roman: "ha", Sound: "h", Example: "like 'h' in 'hat'"},
}
