package i18n

// Key names one engine-rendered message.
type Key string

const (
	KeyGreeting     Key = "greeting"
	KeyJobsCTA      Key = "jobs_cta"
	KeyNoResults    Key = "no_results"
	KeyApplyHint    Key = "apply_hint"
	KeyPromptRole   Key = "prompt_role"
	KeyPromptName   Key = "prompt_name"
	KeyPromptEmail  Key = "prompt_email"
	KeyPromptCity   Key = "prompt_city"
	KeyPromptResume Key = "prompt_resume"
	KeyReprompt     Key = "reprompt"
	// KeyConfirm takes role, name, email.
	KeyConfirm      Key = "confirm"
	KeySubmitFailed Key = "submit_failed"
	KeyCancelled    Key = "cancelled"
	KeyApology      Key = "apology"
)

func Keys() []Key {
	return []Key{
		KeyGreeting, KeyJobsCTA, KeyNoResults, KeyApplyHint,
		KeyPromptRole, KeyPromptName, KeyPromptEmail, KeyPromptCity,
		KeyPromptResume, KeyReprompt, KeyConfirm, KeySubmitFailed,
		KeyCancelled, KeyApology,
	}
}

var messages = map[string]map[Key]string{
	"en": {
		KeyGreeting:     "Hi! Ask about roles, locations, process, or say 'apply'. I can show openings and let you apply here.",
		KeyJobsCTA:      "Here are some openings that match. Say 'apply' + the role to start an application.",
		KeyNoResults:    "I didn’t find openings for that. Try a different keyword or city.",
		KeyApplyHint:    "Say 'apply' + the role (e.g., apply senior engineer), or pick one from a job list.",
		KeyPromptRole:   "Which role are you applying for?",
		KeyPromptName:   "What’s your full name?",
		KeyPromptEmail:  "What’s your email address?",
		KeyPromptCity:   "Where are you located?",
		KeyPromptResume: "Share a resume link (Google Drive, etc.), or type 'skip'.",
		KeyReprompt:     "I still need an answer here — please type a value.",
		KeyConfirm:      "Application submitted for “%s”. Thanks %s — we’ll get back to you at %s.",
		KeySubmitFailed: "Couldn’t submit your application. Please try again.",
		KeyCancelled:    "Application cancelled. Ask about openings whenever you’re ready.",
		KeyApology:      "Sorry, something went wrong.",
	},
	"fr": {
		KeyGreeting:     "Bonjour ! Posez vos questions sur les postes, les villes, le processus, ou dites « postuler ». Je peux afficher les offres et recevoir votre candidature ici.",
		KeyJobsCTA:      "Voici des offres correspondantes. Dites « postuler » + le poste pour démarrer une candidature.",
		KeyNoResults:    "Je n’ai pas trouvé de postes pour cette recherche. Essayez un autre mot-clé ou une autre ville.",
		KeyApplyHint:    "Dites « postuler » suivi du titre du poste (ex : postuler senior engineer), ou choisissez une offre dans la liste.",
		KeyPromptRole:   "Pour quel poste candidatez-vous ?",
		KeyPromptName:   "Quel est votre nom complet ?",
		KeyPromptEmail:  "Quelle est votre adresse e-mail ?",
		KeyPromptCity:   "Où êtes-vous situé(e) ?",
		KeyPromptResume: "Partagez un lien vers votre CV (Google Drive, etc.), ou tapez « skip ».",
		KeyReprompt:     "Il me faut une réponse ici — merci de saisir une valeur.",
		KeyConfirm:      "Candidature envoyée pour « %s ». Merci %s — nous reviendrons vers vous à %s.",
		KeySubmitFailed: "Échec de l’envoi de la candidature. Réessayez.",
		KeyCancelled:    "Candidature annulée. Posez vos questions sur les offres quand vous voulez.",
		KeyApology:      "Oups, une erreur est survenue.",
	},
	"ar": {
		KeyGreeting:     "مرحبًا! اسأل عن الوظائف أو المدن أو خطوات التوظيف، أو اكتب «apply». يمكنني عرض الوظائف واستلام طلبك هنا.",
		KeyJobsCTA:      "هذه بعض الوظائف المطابقة. اكتب «apply» ثم اسم الوظيفة لبدء التقديم.",
		KeyNoResults:    "لم أجد وظائف لهذه الكلمات. جرّب كلمة مفتاحية أو مدينة أخرى.",
		KeyApplyHint:    "اكتب «apply» ثم اسم الوظيفة (مثال: apply senior engineer)، أو اختر وظيفة من القائمة.",
		KeyPromptRole:   "ما الوظيفة التي تريد التقديم لها؟",
		KeyPromptName:   "ما اسمك الكامل؟",
		KeyPromptEmail:  "ما بريدك الإلكتروني؟",
		KeyPromptCity:   "أين تقيم؟",
		KeyPromptResume: "شارك رابط سيرتك الذاتية (Google Drive مثلاً)، أو اكتب «skip».",
		KeyReprompt:     "ما زلت بحاجة إلى إجابة هنا — اكتب قيمة من فضلك.",
		KeyConfirm:      "تم إرسال طلبك لوظيفة «%s». شكرًا %s — سنتواصل معك عبر %s.",
		KeySubmitFailed: "فشل إرسال الطلب. حاول مرة أخرى.",
		KeyCancelled:    "تم إلغاء الطلب. اسأل عن الوظائف متى شئت.",
		KeyApology:      "عذرًا، حدث خطأ ما.",
	},
}

// T returns the literal string for a key in a locale. Missing entries are a
// programming error caught by the package tests; T returns the empty string
// rather than guessing another language.
func T(l Locale, k Key) string {
	return messages[l.Code][k]
}
