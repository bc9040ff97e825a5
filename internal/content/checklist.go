package content

// Checklist is the fixed study checklist shown on the exam blueprint
// screen. Progress is keyed by item ID in the store.
var Checklist = []ChecklistItem{
	{ID: "vocab1", Label: "1,500+ Basic Vocabulary Words", Category: "Vocab"},
	{ID: "part1", Label: "Subject/Topic/Object Particles (-이/가, -은/는, -을/를)", Category: "Grammar"},
	{ID: "part2", Label: "Place & Direction Particles (-에, -에서, -으로)", Category: "Grammar"},
	{ID: "tense1", Label: "Past/Present/Future Tenses", Category: "Grammar"},
	{ID: "honor1", Label: "Honorifics (-시-, -으세요, -습니다)", Category: "Grammar"},
	{ID: "num1", Label: "Native & Sino-Korean Number Systems", Category: "Essentials"},
	{ID: "time1", Label: "Telling Time, Days, and Dates", Category: "Essentials"},
	{ID: "listen1", Label: "Listening Practice: Matching Pictures (Q1-Q4)", Category: "Exam"},
	{ID: "read1", Label: "Reading Practice: Finding Main Idea (Q43-Q70)", Category: "Exam"},
}

// StudyGuides maps checklist item IDs to expanded study notes.
// Not every item has one.
var StudyGuides = map[string]StudyGuide{
	"vocab1": {
		Guide: `Focus on high-frequency nouns and verbs.
- Places: 학교 (School), 식당 (Restaurant), 병원 (Hospital).
- Time: 오늘 (Today), 내일 (Tomorrow), 아침 (Morning).
- Food: 밥 (Meal), 물 (Water), 과일 (Fruit).
- Mastery: Review 20 new words daily and use active recall.`,
		Resources: []StudyResource{
			{Name: "TOPIK Guide Vocab", URL: "https://www.topikguide.com/topik-beginner-vocabulary-list/"},
		},
	},
	"part1": {
		Guide: `Key distinction:
- 이/가: Focuses on the SUBJECT (who/what did it).
- 은/는: Focuses on the TOPIC or CONTRAST (speaking of... whereas...).
- Logics: -이/가 is for new info, -은/는 for established info.`,
		Resources: []StudyResource{
			{Name: "HowToStudyKorean Lesson 1", URL: "https://www.howtostudykorean.com/unit1/unit-1-lessons-1-8/unit-1-lesson-1/"},
		},
	},
	"tense1": {
		Guide: `Standard Polite Conjugation:
- Present: -아요/어요 (가요, 먹어요)
- Past: -았어요/었어요 (갔어요, 먹었어요)
- Future: -(으)ㄹ 거예요 (갈 거예요, 먹을 거예요)`,
		Resources: []StudyResource{
			{Name: "Verb Tense Guide", URL: "https://90daykorean.com/korean-verb-conjugation/"},
		},
	},
	"num1": {
		Guide: `Use Native (하나, 둘, 셋) for: Age, Hours, Counting people/items.
Use Sino (일, 이, 삼) for: Dates, Money, Minutes, Phone numbers.
Warning: Be careful with 1, 2, 3, 4, 20 as they change before counters (한, 두, 세, 네, 스무).`,
		Resources: []StudyResource{
			{Name: "Number Mastery", URL: "https://www.howtostudykorean.com/unit1/unit-1-lessons-9-16/lesson-10/"},
		},
	},
	"read1": {
		Guide: `Advanced Reading:
- Scan for names, dates, and locations in notice boards (Q40-42).
- For long paragraphs, read the first/last sentences to grasp the main idea.
- Match keywords between the text and the answer choices.`,
		Resources: []StudyResource{
			{Name: "Reading Tips", URL: "https://www.topikguide.com/topik-beginner-reading-tips-strategies/"},
		},
	},
}

// ListeningRanges is the listening half of the exam structure map.
var ListeningRanges = []ExamRange{
	{Range: "Q1 - Q4", Topic: "Matching Picture/Subject", Note: "Choose correct picture based on audio."},
	{Range: "Q5 - Q10", Topic: "Conversational Response", Note: "Choose what the next person should say."},
	{Range: "Q11 - Q14", Topic: "Place/Topic Identification", Note: "Where are they? What are they talking about?"},
	{Range: "Q15 - Q30", Topic: "Dialogue Comprehension", Note: "Detailed understanding of conversations."},
}

// ReadingRanges is the reading half of the exam structure map.
var ReadingRanges = []ExamRange{
	{Range: "Q31 - Q33", Topic: "Topic Identification", Note: "What is this short text about?"},
	{Range: "Q34 - Q39", Topic: "Fill in the Blanks", Note: "Vocabulary and Grammar focus."},
	{Range: "Q40 - Q42", Topic: "Detailed Information", Note: "Signs, ads, and notice boards."},
	{Range: "Q43 - Q70", Topic: "Paragraph Comprehension", Note: "Long texts, finding main ideas, logic order."},
}

// ExternalResources lists official study sites shown on the blueprint.
var ExternalResources = []struct {
	Name string
	URL  string
	Desc string
}{
	{"Official TOPIK Site", "https://www.topik.go.kr", "Schedule and registration"},
	{"TOPIK Guide", "https://www.topikguide.com", "Mock tests and study materials"},
	{"King Sejong Institute", "https://www.iksi.or.kr", "Government-funded learning"},
	{"National Institute List", "https://www.korean.go.kr", "Official vocabulary lists"},
}
