package format

import (
	"fmt"

	"github.com/alextransit/alextransit/internal/language"
)

// ExtractionPrompt asks the user to name both endpoints, with examples in
// their language.
func ExtractionPrompt(lang language.Language) string {
	if lang == language.Arabic {
		return "من فضلك حدد نقطة البداية والوجهة بوضوح. مثال: 'عايز أروح من الفلكي لسيدي جابر' أو 'من فيكتوريا إلى المنتزه'"
	}
	return "Please specify both starting point and destination clearly. Example: 'I want to go from Falaki to Sidi Gaber' or 'from Victoria to Montazah'"
}

// LocationNotFound reports a place name the gazetteer could not resolve.
func LocationNotFound(name string, lang language.Language) string {
	if lang == language.Arabic {
		return fmt.Sprintf("عذراً، لم أتمكن من العثور على موقع: **%s**. تأكد من كتابة الاسم بطريقة صحيحة.", name)
	}
	return fmt.Sprintf("Sorry, I couldn't find the location: **%s**. Please check the spelling.", name)
}

// InternalError is shown when processing failed unexpectedly.
func InternalError(lang language.Language) string {
	if lang == language.Arabic {
		return "عذراً، حدث خطأ في معالجة طلبك. حاول مرة أخرى."
	}
	return "Sorry, an error occurred while processing your request. Please try again."
}
