package content

// Vocabulary is the built-in flashcard deck, grouped by category.
var Vocabulary = []Flashcard{
	// Places
	{ID: "v1", Korean: "학교", English: "School", Category: "Places", Example: "학교에서 한국어를 배워요."},
	{ID: "v2", Korean: "식당", English: "Restaurant", Category: "Places", Example: "이 식당은 김치찌개가 맛있어요."},
	{ID: "v3", Korean: "병원", English: "Hospital", Category: "Places", Example: "배가 아파서 병원에 갔어요."},
	{ID: "v4", Korean: "우체국", English: "Post Office", Category: "Places", Example: "우체국에서 편지를 보냅니다."},
	{ID: "v5", Korean: "공원", English: "Park", Category: "Places", Example: "날씨가 좋아서 공원에서 산책해요."},
	{ID: "v21", Korean: "도서관", English: "Library", Category: "Places", Example: "도서관에서 책을 빌렸어요."},
	{ID: "v22", Korean: "은행", English: "Bank", Category: "Places", Example: "은행에서 돈을 찾았습니다."},
	{ID: "v23", Korean: "백화점", English: "Dept. Store", Category: "Places", Example: "백화점에서 옷을 사요."},
	{ID: "v33", Korean: "약국", English: "Pharmacy", Category: "Places", Example: "약국에서 감기약을 샀어요."},
	{ID: "v34", Korean: "시장", English: "Market", Category: "Places", Example: "시장에서 과일을 샀습니다."},
	{ID: "v60", Korean: "공항", English: "Airport", Category: "Places", Example: "공항에 사람이 아주 많아요."},
	{ID: "v61", Korean: "편의점", English: "Convenience Store", Category: "Places", Example: "편의점에서 우유를 샀어요."},
	{ID: "v62", Korean: "회사", English: "Company/Office", Category: "Places", Example: "아버지는 회사에 가십니다."},

	// Food & drink
	{ID: "v6", Korean: "사과", English: "Apple", Category: "Food", Example: "시장에서 빨간 사과를 샀어요."},
	{ID: "v7", Korean: "우유", English: "Milk", Category: "Food", Example: "아침에 우유를 마십니다."},
	{ID: "v8", Korean: "물", English: "Water", Category: "Food", Example: "물을 좀 주세요."},
	{ID: "v24", Korean: "빵", English: "Bread", Category: "Food", Example: "빵집에서 맛있는 빵을 샀어요."},
	{ID: "v25", Korean: "밥", English: "Rice/Meal", Category: "Food", Example: "가족과 같이 밥을 먹어요."},
	{ID: "v26", Korean: "고기", English: "Meat", Category: "Food", Example: "저는 고기를 좋아합니다."},
	{ID: "v35", Korean: "커피", English: "Coffee", Category: "Food", Example: "카페에서 커피를 마셔요."},
	{ID: "v36", Korean: "김치", English: "Kimchi", Category: "Food", Example: "김치가 조금 매워요."},
	{ID: "v63", Korean: "냉면", English: "Cold Noodles", Category: "Food", Example: "여름에는 냉면이 최고예요."},
	{ID: "v64", Korean: "불고기", English: "Bulgogi", Category: "Food", Example: "외국 친구들이 불고기를 좋아해요."},

	// People & family
	{ID: "v9", Korean: "친구", English: "Friend", Category: "People", Example: "주말에 친구를 만날 거예요."},
	{ID: "v10", Korean: "선생님", English: "Teacher", Category: "People", Example: "한국어 선생님이 친절해요."},
	{ID: "v11", Korean: "가족", English: "Family", Category: "People", Example: "우리 가족은 네 명이에요."},
	{ID: "v27", Korean: "부모님", English: "Parents", Category: "People", Example: "부모님께 선물을 드렸어요."},
	{ID: "v28", Korean: "동생", English: "Younger Sibling", Category: "People", Example: "동생이 노래를 잘 해요."},
	{ID: "v37", Korean: "학생", English: "Student", Category: "People", Example: "저는 한국대학교 학생입니다."},
	{ID: "v38", Korean: "의사", English: "Doctor", Category: "People", Example: "병원의 의사 선생님이 좋아요."},
	{ID: "v65", Korean: "할머니", English: "Grandmother", Category: "People", Example: "할머니 댁에 방문했어요."},
	{ID: "v66", Korean: "언니", English: "Older Sister (Female)", Category: "People", Example: "언니가 요리를 잘 해요."},

	// Time & days
	{ID: "v39", Korean: "오늘", English: "Today", Category: "Time", Example: "오늘은 날씨가 춥네요."},
	{ID: "v40", Korean: "내일", English: "Tomorrow", Category: "Time", Example: "내일 친구를 만나요."},
	{ID: "v41", Korean: "어제", English: "Yesterday", Category: "Time", Example: "어제 영화를 봤어요."},
	{ID: "v42", Korean: "지금", English: "Now", Category: "Time", Example: "지금 공부하고 있어요."},
	{ID: "v43", Korean: "아침", English: "Morning", Category: "Time", Example: "아침 일찍 일어납니다."},
	{ID: "v44", Korean: "오후", English: "Afternoon", Category: "Time", Example: "오후에 운동을 해요."},
	{ID: "v45", Korean: "주말", English: "Weekend", Category: "Time", Example: "주말에 등산을 갑니다."},
	{ID: "v67", Korean: "저녁", English: "Evening/Dinner", Category: "Time", Example: "저녁에 가족들과 밥을 먹어요."},
	{ID: "v68", Korean: "지난주", English: "Last week", Category: "Time", Example: "지난주에 여행을 다녀왔어요."},

	// Actions (verbs)
	{ID: "v12", Korean: "공부하다", English: "To study", Category: "Actions", Example: "도서관에서 시험 공부를 해요."},
	{ID: "v13", Korean: "먹다", English: "To eat", Category: "Actions", Example: "점심을 맛있게 먹었어요."},
	{ID: "v14", Korean: "자다", English: "To sleep", Category: "Actions", Example: "피곤해서 일찍 잤어요."},
	{ID: "v15", Korean: "가다", English: "To go", Category: "Actions", Example: "내일 쇼핑하러 백화점에 가요."},
	{ID: "v29", Korean: "오다", English: "To come", Category: "Actions", Example: "친구가 우리 집에 왔어요."},
	{ID: "v30", Korean: "운동하다", English: "To exercise", Category: "Actions", Example: "아침마다 운동을 해요."},
	{ID: "v46", Korean: "만나다", English: "To meet", Category: "Actions", Example: "학교에서 친구를 만나요."},
	{ID: "v47", Korean: "사다", English: "To buy", Category: "Actions", Example: "시장에서 사과를 샀어요."},
	{ID: "v48", Korean: "마시다", English: "To drink", Category: "Actions", Example: "물을 많이 마십니다."},
	{ID: "v49", Korean: "읽다", English: "To read", Category: "Actions", Example: "책을 읽는 것이 재미있어요."},
	{ID: "v69", Korean: "듣다", English: "To listen", Category: "Actions", Example: "한국 노래를 자주 들어요."},
	{ID: "v70", Korean: "말하다", English: "To speak", Category: "Actions", Example: "한국어로 천천히 말해 주세요."},

	// Adjectives
	{ID: "v16", Korean: "예쁘다", English: "Pretty", Category: "Adjectives", Example: "이 옷이 참 예쁘네요."},
	{ID: "v17", Korean: "크다", English: "Big", Category: "Adjectives", Example: "우리 집은 아주 커요."},
	{ID: "v18", Korean: "작다", English: "Small", Category: "Adjectives", Example: "가방이 너무 작아요."},
	{ID: "v19", Korean: "어렵다", English: "Difficult", Category: "Adjectives", Example: "한국어 공부가 조금 어려워요."},
	{ID: "v20", Korean: "재미있다", English: "Interesting/Fun", Category: "Adjectives", Example: "이 영화는 정말 재미있어요."},
	{ID: "v31", Korean: "멀다", English: "Far", Category: "Adjectives", Example: "회사가 집에서 좀 멀어요."},
	{ID: "v32", Korean: "가깝다", English: "Close/Near", Category: "Adjectives", Example: "역이 여기서 아주 가까워요."},
	{ID: "v50", Korean: "좋다", English: "Good", Category: "Adjectives", Example: "날씨가 참 좋아요."},
	{ID: "v51", Korean: "맵다", English: "Spicy", Category: "Adjectives", Example: "음식이 조금 매워요."},
	{ID: "v71", Korean: "바쁘다", English: "Busy", Category: "Adjectives", Example: "요즘 시험 때문에 너무 바빠요."},
}
