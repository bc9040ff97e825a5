package content

// ExamSets lists the available mock exam sets in menu order.
var ExamSets = []int{1, 2, 3, 4}

// Questions is the full practice question pool, grouped by exam set.
var Questions = []Question{
	// Exam set 1
	{
		ID:          "l1s1",
		Type:        Listening,
		RangeKey:    "Q1 - Q4",
		ExamSet:     1,
		Prompt:      "Which picture matches the sentence?",
		Script:      "여기는 도서관입니다. 사람들이 책을 읽습니다.",
		Options:     [4]string{"공원 (Park)", "도서관 (Library)", "학교 (School)", "체육관 (Gym)"},
		Correct:     1,
		Points:      3,
		Explanation: "The script mentions 도서관 (library) and people reading books.",
		Translation: "This is a library. People read books.",
	},
	{
		ID:          "l2s1",
		Type:        Listening,
		RangeKey:    "Q5 - Q10",
		ExamSet:     1,
		Prompt:      "Choose the correct response.",
		Script:      "가: 안녕히 가세요. \n 나: (____)",
		Options:     [4]string{"안녕하세요", "반가워요", "안녕히 계세요", "잘 먹겠습니다"},
		Correct:     2,
		Points:      3,
		Explanation: "When someone leaves (안녕히 가세요), the person staying says 안녕히 계세요.",
		Translation: "A: Goodbye (Go in peace). B: (____)",
	},
	{
		ID:          "l3s1",
		Type:        Listening,
		RangeKey:    "Q11 - Q14",
		ExamSet:     1,
		Prompt:      "Where are they?",
		Script:      "가: 이 구두 얼마예요? \n 나: 삼만 원입니다.",
		Options:     [4]string{"공항 (Airport)", "백화점 (Dept. Store)", "은행 (Bank)", "병원 (Hospital)"},
		Correct:     1,
		Points:      3,
		Explanation: "Discussing prices of shoes usually happens in a department store.",
		Translation: "A: How much are these shoes? B: 30,000 won.",
	},
	{
		ID:          "r1s1",
		Type:        Reading,
		RangeKey:    "Q31 - Q33",
		ExamSet:     1,
		Prompt:      "무엇에 대한 이야기입니까? \n 오이, 당근, 배추",
		Options:     [4]string{"채소 (Vegetables)", "과일 (Fruit)", "동물 (Animals)", "옷 (Clothes)"},
		Correct:     0,
		Points:      2,
		Explanation: "Cucumber, carrot, and cabbage are vegetables (채소).",
		Translation: "What is this about? Cucumber, Carrot, Cabbage.",
	},
	{
		ID:          "r2s1",
		Type:        Reading,
		RangeKey:    "Q34 - Q39",
		ExamSet:     1,
		Prompt:      "빈칸에 들어갈 말을 고르십시오. \n 오늘은 날씨가 _____요. 그래서 코트를 입었습니다.",
		Options:     [4]string{"더워요", "추워요", "좋아요", "밝아요"},
		Correct:     1,
		Points:      2,
		Explanation: "If one wears a coat, the weather must be cold (추워요).",
		Translation: "Today the weather is _____. So I wore a coat.",
	},

	// Exam set 2
	{
		ID:          "l1s2",
		Type:        Listening,
		RangeKey:    "Q1 - Q4",
		ExamSet:     2,
		Prompt:      "Which picture matches the sentence?",
		Script:      "비가 옵니다. 사람들이 우산을 씁니다.",
		Options:     [4]string{"날씨가 맑음", "눈이 옴", "우산을 씀", "수영을 함"},
		Correct:     2,
		Points:      3,
		Explanation: "The script says it is raining (비가 옵니다) and people use umbrellas (우산을 씁니다).",
		Translation: "It is raining. People use umbrellas.",
	},
	{
		ID:          "l2s2",
		Type:        Listening,
		RangeKey:    "Q5 - Q10",
		ExamSet:     2,
		Prompt:      "Choose the correct response.",
		Script:      "가: 주말에 뭐 했어요? \n 나: (____)",
		Options:     [4]string{"영화관에 가요", "영화를 볼 거예요", "영화를 봤어요", "영화를 보고 싶어요"},
		Correct:     2,
		Points:      3,
		Explanation: "The question is past tense (뭐 했어요?), so the answer must be past tense (봤어요).",
		Translation: "A: What did you do on the weekend? B: (____)",
	},
	{
		ID:          "r2s2",
		Type:        Reading,
		RangeKey:    "Q34 - Q39",
		ExamSet:     2,
		Prompt:      "빈칸에 들어갈 말을 고르십시오. \n 가: 이 구두는 얼마예요? \n 나: 오만 _____입니다.",
		Options:     [4]string{"원", "명", "개", "번"},
		Correct:     0,
		Points:      2,
		Explanation: "Prices are counted in Won (원).",
		Translation: "A: How much are these shoes? B: 50,000 _____.",
	},

	// Exam set 3
	{
		ID:          "l1s3",
		Type:        Listening,
		RangeKey:    "Q1 - Q4",
		ExamSet:     3,
		Prompt:      "Which picture matches the sentence?",
		Script:      "바람이 많이 붑니다. 날씨가 춥습니다.",
		Options:     [4]string{"바람 부는 날씨", "더운 날씨", "비 오는 날씨", "눈 오는 날씨"},
		Correct:     0,
		Points:      3,
		Explanation: "The script says it is windy (바람이 붑니다) and cold (춥습니다).",
		Translation: "It is very windy. The weather is cold.",
	},
	{
		ID:          "r1s3",
		Type:        Reading,
		RangeKey:    "Q31 - Q33",
		ExamSet:     3,
		Prompt:      "무엇에 대한 이야기입니까? \n 봄, 여름, 가을",
		Options:     [4]string{"요일 (Day)", "계절 (Season)", "과일 (Fruit)", "장소 (Place)"},
		Correct:     1,
		Points:      2,
		Explanation: "Spring, Summer, and Fall are seasons (계절).",
		Translation: "What is this about? Spring, Summer, Fall.",
	},

	// Exam set 4
	{
		ID:       "r4s4",
		Type:     Reading,
		RangeKey: "Q43 - Q70",
		ExamSet:  4,
		Prompt:   "다음의 중심 생각을 고르십시오. \n 저는 요리하는 것을 좋아합니다. 매일 집에서 맛있는 음식을 만듭니다. 가족들과 같이 먹는 것이 행복합니다.",
		Options: [4]string{
			"저는 요리를 배우고 싶습니다.",
			"저는 집에서 쉬고 싶습니다.",
			"저는 요리하는 것이 즐겁습니다.",
			"저는 가족이 많습니다.",
		},
		Correct:     2,
		Points:      3,
		Explanation: "The text describes enjoying cooking at home.",
		Translation: "I like cooking. Every day I make delicious food at home. Eating with my family makes me happy.",
	},
}

// Filter narrows the question pool. Zero values mean "no constraint";
// both constraints must hold for a question to pass (intersection).
type Filter struct {
	RangeKey string
	ExamSet  int
}

// Matches reports whether q passes the filter.
func (f Filter) Matches(q Question) bool {
	if f.RangeKey != "" && q.RangeKey != f.RangeKey {
		return false
	}
	if f.ExamSet != 0 && q.ExamSet != f.ExamSet {
		return false
	}
	return true
}

// FilterQuestions returns the pool subset passing f, in pool order.
func FilterQuestions(f Filter) []Question {
	var out []Question
	for _, q := range Questions {
		if f.Matches(q) {
			out = append(out, q)
		}
	}
	return out
}
