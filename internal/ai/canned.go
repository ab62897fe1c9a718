package ai

import (
	"fmt"
	"math/rand"
	"strings"

	"wolf-ai/internal/models"
)

// Keyword sets for classifying a message, checked in priority order. The
// platform answers in Arabic, so most keywords are Arabic substrings.
var (
	aiKeywords       = []string{"ذكاء اصطناعي", "ai", "تدريب"}
	codeKeywords     = []string{"برمجة", "كود", "تطوير"}
	platformKeywords = []string{"wolf", "ولف", "منصة"}
)

// cannedResponses builds the template pool for a matched category with the
// model's name, type and accuracy interpolated.
func aiPool(model *models.Model) []string {
	accuracy := "في تطوير مستمر"
	if model.Accuracy != nil {
		accuracy = fmt.Sprintf("%.1f%%", *model.Accuracy*100)
	}
	return []string{
		fmt.Sprintf("أنا %s، نموذج ذكاء اصطناعي متطور. يمكنني مساعدتك في فهم وتطوير حلول الذكاء الاصطناعي المتقدمة.", model.Name),
		fmt.Sprintf("في منصة Wolf AI، نحن نتخصص في تدريب النماذج بأحدث التقنيات. دقتي الحالية %s.", accuracy),
		"التدريب العميق والتعلم الآلي هما أساس قوتي. يمكنني التعامل مع مختلف أنواع البيانات والمهام المعقدة.",
		fmt.Sprintf("كنموذج %s، أتميز بقدرات فائقة في معالجة اللغة الطبيعية والفهم السياقي المتقدم.", model.Type),
	}
}

func codePool() []string {
	return []string{
		"أتقن العديد من لغات البرمجة ويمكنني مساعدتك في كتابة وتحسين الكود بكفاءة عالية.",
		"التطوير البرمجي فن وعلم، وأنا هنا لمساعدتك في إنشاء حلول تقنية مبتكرة وموثوقة.",
		"من Python إلى JavaScript، يمكنني توجيهك في رحلتك البرمجية وحل المشاكل التقنية المعقدة.",
	}
}

func platformPool() []string {
	return []string{
		"مرحباً بك في منصة Wolf AI! أنا جزء من النظام البيئي الذكي الذي يهدف إلى تمكينك من قوة الذكاء الاصطناعي.",
		"منصة Wolf AI تجمع بين القوة والأناقة في تدريب النماذج. كيف يمكنني مساعدتك اليوم؟",
		"في Wolf AI، نؤمن بأن المستقبل للذكاء الاصطناعي المتطور. دعني أوضح لك كيف يمكن أن نحقق أهدافك معاً.",
	}
}

func genericPool() []string {
	return []string{
		"شكراً لتواصلك معي. كنموذج ذكاء اصطناعي متقدم، أسعى لتقديم إجابات مفيدة ودقيقة لجميع استفساراتك.",
		"أنا هنا لمساعدتك في أي موضوع تريد مناقشته. خبرتي تشمل مجالات متنوعة من التكنولوجيا إلى العلوم.",
		"يسعدني التحدث معك. كيف يمكنني أن أجعل تجربتك مع الذكاء الاصطناعي أكثر فائدة وإثراء؟",
		"كنموذج متطور في منصة Wolf AI، أهدف إلى تقديم حلول ذكية ومبتكرة لتحدياتك اليومية.",
	}
}

func containsAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}

// cannedResponse classifies the message and picks uniformly at random from
// the matched category's templates. It always produces a non-empty answer.
func cannedResponse(message string, model *models.Model) string {
	lower := strings.ToLower(message)

	var pool []string
	switch {
	case containsAny(lower, aiKeywords):
		pool = aiPool(model)
	case containsAny(lower, codeKeywords):
		pool = codePool()
	case containsAny(lower, platformKeywords):
		pool = platformPool()
	default:
		pool = genericPool()
	}

	return pool[rand.Intn(len(pool))]
}
