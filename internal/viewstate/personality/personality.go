// Package personality holds the nine reading-personality archetypes and
// picks the one that describes a reader
package personality

import "github.com/jeondoksi/jeondoksi-cli/internal/entities"

// Key identifies an archetype. Server-assigned dominant types use these keys.
type Key string

// Archetype keys
const (
	Philosopher Key = "PHILOSOPHER"
	Analyst     Key = "ANALYST"
	Empath      Key = "EMPATH"
	Activist    Key = "ACTIVIST"
	Strategist  Key = "STRATEGIST"
	Visionary   Key = "VISIONARY"
	Sage        Key = "SAGE"
	Reader      Key = "READER"
	Grower      Key = "GROWER"
)

// Type is one archetype as shown on the personality view
type Type struct {
	Key         Key
	Title       string
	Description string
	Icon        string
	Tags        []string
}

var types = []Type{
	{
		Key:         Philosopher,
		Title:       "사색하는 철학자",
		Description: "단순히 글자를 읽는 것을 넘어, 책 속에 담긴 깊은 의미와 철학적 질문을 탐구합니다. 저자의 의도를 파악하고 자신의 삶과 연결 지어 깊이 있게 사색하는 것을 즐기는 당신은, 독서를 통해 끊임없이 자아를 성찰하고 성장하는 진정한 철학자입니다.",
		Icon:        "🤔",
		Tags:        []string{"#통찰력", "#깊은사고", "#지혜탐구", "#자아성찰"},
	},
	{
		Key:         Analyst,
		Title:       "냉철한 분석가",
		Description: "책의 논리적 구조와 인과관계를 파악하는 데 탁월한 능력을 보입니다. 정보를 비판적으로 수용하며, 저자의 주장에 대한 근거를 꼼꼼히 따져보는 당신은, 독서를 통해 지적 유희를 즐기고 명확한 해답을 찾아가는 지적인 탐험가입니다.",
		Icon:        "🧐",
		Tags:        []string{"#논리적", "#비판적", "#구조파악", "#팩트체크"},
	},
	{
		Key:         Empath,
		Title:       "감성적인 공감러",
		Description: "등장인물의 감정에 깊이 이입하여 함께 울고 웃을 수 있는 따뜻한 마음을 가졌습니다. 문장 하나하나에 담긴 정서를 섬세하게 느끼며, 책이 주는 감동과 여운을 오랫동안 간직하는 당신은, 독서를 통해 타인의 삶을 이해하고 공감하는 능력을 키워갑니다.",
		Icon:        "🥰",
		Tags:        []string{"#감성이입", "#공감능력", "#감동", "#풍부한감성"},
	},
	{
		Key:         Activist,
		Title:       "행동하는 실천가",
		Description: "책에서 얻은 깨달음을 머릿속에만 가두지 않고, 즉시 삶의 현장에 적용하여 변화를 만들어냅니다. 독서는 곧 행동을 위한 준비 과정이라고 믿는 당신은, 지식을 통해 세상을 긍정적으로 바꾸고자 노력하는 열정적인 리더입니다.",
		Icon:        "🏃",
		Tags:        []string{"#실천력", "#변화주도", "#적용", "#리더십"},
	},
	{
		Key:         Strategist,
		Title:       "용의주도한 전략가",
		Description: "치밀한 논리와 분석을 바탕으로 계획을 세우고, 이를 주저 없이 실행에 옮기는 스타일입니다. 독서를 통해 얻은 지식을 현실의 문제 해결에 적극적으로 활용하며, 생각과 행동이 일치하는 당신은 탁월한 전략가입니다.",
		Icon:        "♟️",
		Tags:        []string{"#지행합일", "#전략적", "#계획실천", "#문제해결"},
	},
	{
		Key:         Visionary,
		Title:       "영감을 주는 모험가",
		Description: "책에서 얻은 깊은 감동과 열정을 원동력 삼아, 세상을 향해 적극적으로 나아가는 스타일입니다. 당신의 독서는 단순한 감상을 넘어 새로운 도전을 위한 영감이 되며, 주변 사람들에게 긍정적인 에너지를 전파하는 모험가입니다.",
		Icon:        "🚀",
		Tags:        []string{"#열정", "#영감", "#도전", "#동기부여"},
	},
	{
		Key:         Sage,
		Title:       "통달한 현자",
		Description: "논리, 감성, 행동 모든 면에서 뛰어난 균형을 갖춘 완성형 독서가입니다.",
		Icon:        "🦉",
		Tags:        []string{"#올라운더", "#완벽한균형", "#통찰력"},
	},
	{
		Key:         Reader,
		Title:       "성실한 독서가",
		Description: "하루도 빠짐없이 책을 펼치는 꾸준함과 성실함이 당신의 가장 큰 무기입니다. 독서를 일상의 자연스러운 습관으로 만들었으며, 티끌 모아 태산처럼 쌓여가는 지식의 힘을 믿는 당신은, 묵묵히 자신의 길을 걸어가는 끈기 있는 독자입니다.",
		Icon:        "📚",
		Tags:        []string{"#꾸준함", "#성실", "#습관", "#끈기"},
	},
	{
		Key:         Grower,
		Title:       "성장하는 독서가",
		Description: "아직 분석된 독후감이 없습니다. 첫 독후감을 작성하면 당신만의 독서 성향이 드러납니다.",
		Icon:        "🌱",
		Tags:        []string{"#시작", "#가능성"},
	},
}

var byKey = func() map[Key]Type {
	m := make(map[Key]Type, len(types))
	for _, t := range types {
		m[t.Key] = t
	}
	return m
}()

// All returns every archetype in display order
func All() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// Lookup returns the archetype for a server-assigned key. Unknown keys fall
// back to Reader.
func Lookup(key string) Type {
	if t, ok := byKey[Key(key)]; ok {
		return t
	}
	return byKey[Reader]
}

// Dominant classifies by the largest stat. All zeros yield Grower; ties go
// to logic, then emotion, then action.
func Dominant(logic, emotion, action int) Type {
	switch {
	case logic == 0 && emotion == 0 && action == 0:
		return byKey[Grower]
	case logic >= emotion && logic >= action:
		return byKey[Analyst]
	case emotion >= action:
		return byKey[Empath]
	default:
		return byKey[Activist]
	}
}

// ForUser prefers the server-assigned type and falls back to the stats
func ForUser(u *entities.User) Type {
	if u == nil {
		return byKey[Grower]
	}
	if u.DominantType != "" {
		return Lookup(u.DominantType)
	}
	return Dominant(u.Stats.Logic, u.Stats.Emotion, u.Stats.Action)
}
