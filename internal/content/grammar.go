package content

// Grammar is the built-in grammar reference for TOPIK I.
var Grammar = []GrammarPoint{
	{
		Pattern:     "-이/가",
		Explanation: "Subject marking particles.",
		Usage:       "Add -이 to nouns ending in a consonant, -가 to nouns ending in a vowel.",
		Examples: []GrammarExample{
			{Korean: "책이 책상 위에 있어요.", English: "The book is on the desk."},
			{Korean: "가방이 가벼워요.", English: "The bag is light."},
		},
	},
	{
		Pattern:     "-은/는",
		Explanation: "Topic marking particles.",
		Usage:       "Used to indicate the topic of the sentence or show contrast.",
		Examples: []GrammarExample{
			{Korean: "저는 학생입니다.", English: "I am a student."},
			{Korean: "날씨는 춥지만 마음은 따뜻해요.", English: "The weather is cold, but my heart is warm."},
		},
	},
	{
		Pattern:     "-을/를",
		Explanation: "Object marking particles.",
		Usage:       "Add -을 to objects ending in a consonant, -를 to objects ending in a vowel.",
		Examples: []GrammarExample{
			{Korean: "사과를 먹어요.", English: "I eat an apple."},
			{Korean: "물을 마셔요.", English: "I drink water."},
		},
	},
	{
		Pattern:     "-에",
		Explanation: "Time and Place particle.",
		Usage:       "Indicates the location of a static object or the direction/time of an action.",
		Examples: []GrammarExample{
			{Korean: "학교에 가요.", English: "I go to school."},
			{Korean: "아홉 시에 만나요.", English: "Let's meet at 9 o'clock."},
		},
	},
	{
		Pattern:     "-에서",
		Explanation: "Dynamic Location particle.",
		Usage:       "Indicates the place where an action is happening.",
		Examples: []GrammarExample{
			{Korean: "집에서 쉬어요.", English: "I rest at home."},
			{Korean: "도서관에서 공부해요.", English: "I study at the library."},
		},
	},
	{
		Pattern:     "-아요/어요/해요",
		Explanation: "Polite Present Tense ending.",
		Usage:       "Standard ending for everyday conversations.",
		Examples: []GrammarExample{
			{Korean: "가요.", English: "I go / Let's go."},
			{Korean: "먹어요.", English: "I eat."},
		},
	},
	{
		Pattern:     "-았/었/였어요",
		Explanation: "Polite Past Tense ending.",
		Usage:       "Used to express completed actions in the past.",
		Examples: []GrammarExample{
			{Korean: "어제 영화를 봤어요.", English: "I watched a movie yesterday."},
			{Korean: "밥을 먹었어요.", English: "I ate a meal."},
		},
	},
	{
		Pattern:     "-(으)ㄹ 거예요",
		Explanation: "Future Tense ending.",
		Usage:       "Expresses intentions or future plans.",
		Examples: []GrammarExample{
			{Korean: "내일 갈 거예요.", English: "I will go tomorrow."},
		},
	},
	{
		Pattern:     "-고 싶다",
		Explanation: "To want to.",
		Usage:       "Added to a verb stem to express desire.",
		Examples: []GrammarExample{
			{Korean: "한국에 가고 싶어요.", English: "I want to go to Korea."},
		},
	},
	{
		Pattern:     "-지 마세요",
		Explanation: "Please don't...",
		Usage:       "Used for negative commands or requests.",
		Examples: []GrammarExample{
			{Korean: "뛰지 마세요.", English: "Please don't run."},
			{Korean: "잊지 마세요.", English: "Please don't forget."},
		},
	},
	{
		Pattern:     "-기 때문에",
		Explanation: "Because / Since.",
		Usage:       "Provides a reason for the following clause.",
		Examples: []GrammarExample{
			{Korean: "비가 오기 때문에 안 가요.", English: "Because it's raining, I'm not going."},
		},
	},
}
