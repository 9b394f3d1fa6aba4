// Package chatbot is the rule-based responder behind the storefront chat
// widget. It answers common questions in Arabic or French from a keyword
// table and is also the fallback when the AI assistant is unavailable.
package chatbot

import "strings"

// WhatsAppLink is offered whenever the bot cannot help directly.
const WhatsAppLink = "https://wa.me/212612345678"

type rule struct {
	keywords []string
	ar       string
	fr       string
}

// Rules are checked in order; the first keyword hit wins. Keywords mix
// Arabic and French because customers write in either.
var rules = []rule{
	{
		keywords: []string{"مرحبا", "السلام", "أهلا", "bonjour", "salut", "hello"},
		ar:       "أهلاً وسهلاً بك! 😊 أنا هنا لمساعدتك في كل ما يتعلق بخدمات 4phone. اسأل عن أي شيء!",
		fr:       "Bonjour et bienvenue! 😊 Je suis là pour vous aider avec tous les services 4phone. N'hésitez pas à poser vos questions!",
	},
	{
		keywords: []string{"شكر", "merci", "thank"},
		ar:       "العفو! 😊 أي خدمة أخرى يمكنني مساعدتك فيها؟",
		fr:       "De rien! 😊 Puis-je vous aider avec autre chose?",
	},
	{
		keywords: []string{"سعر", "تكلفة", "فلوس", "prix", "coût", "tarif"},
		ar:       "💰 أسعارنا تنافسية جداً:\n📱 إصلاح الشاشات: 80-300 درهم\n🔋 بطاريات: 50-150 درهم\n🔊 سماعات: 40-120 درهم\n📞 اتصل بنا للحصول على عرض سعر دقيق لهاتفك!",
		fr:       "💰 Nos prix sont très compétitifs:\n📱 Réparation écrans: 80-300 dirhams\n🔋 Batteries: 50-150 dirhams\n🔊 Haut-parleurs: 40-120 dirhams\n📞 Appelez-nous pour un devis précis!",
	},
	{
		keywords: []string{"ضمان", "كفالة", "garantie"},
		ar:       "🛡️ نوفر ضمان شامل وموثوق:\n📱 الشاشات: 6 أشهر ضمان كامل\n🔋 البطاريات: سنة كاملة\n🔊 السماعات: 4 أشهر\n✅ نستبدل القطعة مجاناً في حالة العيب!",
		fr:       "🛡️ Nous offrons une garantie complète:\n📱 Écrans: 6 mois de garantie\n🔋 Batteries: 1 an complet\n🔊 Haut-parleurs: 4 mois\n✅ Remplacement gratuit en cas de défaut!",
	},
	{
		keywords: []string{"تركيب", "تصليح", "إصلاح", "installation", "réparation"},
		ar:       "🔧 خدمة التركيب المجانية مع فنيين محترفين:\n⚡ تركيب فوري في المتجر\n🏠 خدمة منزلية متاحة\n📱 فحص شامل بعد التركيب مجاناً!",
		fr:       "🔧 Service d'installation gratuit avec techniciens pro:\n⚡ Installation immédiate en magasin\n🏠 Service à domicile disponible\n📱 Test complet après installation!",
	},
	{
		keywords: []string{"توصيل", "شحن", "livraison", "delivery"},
		ar:       "🚚 خدمة التوصيل السريعة:\n🏙️ مجاني داخل المدينة خلال 24 ساعة\n🌍 للمدن الأخرى: 30 درهم فقط\n📦 تغليف آمن ومحكم",
		fr:       "🚚 Service de livraison rapide:\n🏙️ Gratuit en ville sous 24h\n🌍 Autres villes: seulement 30 dirhams\n📦 Emballage sécurisé",
	},
	{
		keywords: []string{"هاتف", "آيفون", "سامسونغ", "téléphone", "iphone", "samsung", "xiaomi"},
		ar:       "📱 نتعامل مع جميع الماركات:\n🍎 iPhone (جميع الموديلات)\n📱 Samsung, Huawei, Xiaomi\n🔧 OnePlus, Oppo, Vivo\n❓ لست متأكد من نوع هاتفك؟ أرسل لنا صورة وسنساعدك!",
		fr:       "📱 Nous travaillons avec toutes les marques:\n🍎 iPhone (tous modèles)\n📱 Samsung, Huawei, Xiaomi\n🔧 OnePlus, Oppo, Vivo\n❓ Pas sûr de votre modèle? Envoyez une photo!",
	},
	{
		keywords: []string{"وقت", "مفتوح", "عنوان", "موقع", "horaire", "ouvert", "adresse"},
		ar:       "🕒 أوقات العمل:\n📅 السبت - الخميس: 9:00 - 21:00\n📅 الجمعة: 14:00 - 21:00\n📍 العنوان: شارع الرئيسي، المدينة",
		fr:       "🕒 Horaires d'ouverture:\n📅 Samedi - Jeudi: 9h00 - 21h00\n📅 Vendredi: 14h00 - 21h00\n📍 Adresse: Rue Principale, Ville",
	},
	{
		keywords: []string{"مستعمل", "قديم", "بيع", "occasion", "usagé", "vendre"},
		ar:       "📱 خدمات الهواتف المستعملة:\n💰 نشتري هاتفك بأفضل سعر\n🔍 تقييم مجاني وفوري\n✅ هواتف مستعملة مفحوصة ومضمونة",
		fr:       "📱 Services téléphones d'occasion:\n💰 Nous achetons votre téléphone au meilleur prix\n🔍 Évaluation gratuite et immédiate\n✅ Téléphones d'occasion vérifiés",
	},
	{
		keywords: []string{"مشكلة", "عطل", "لا يعمل", "problème", "panne", "marche pas"},
		ar:       "🔧 حل المشاكل التقنية:\n🔍 تشخيص مجاني للمشكلة\n⚡ إصلاح سريع في معظم الحالات\n📞 اتصل بنا أو احضر هاتفك للفحص!",
		fr:       "🔧 Résolution problèmes techniques:\n🔍 Diagnostic gratuit du problème\n⚡ Réparation rapide dans la plupart des cas\n📞 Appelez ou apportez votre téléphone!",
	},
	{
		keywords: []string{"اتصال", "تواصل", "رقم", "contact", "appeler", "numéro"},
		ar:       "📞 تواصل معنا بسهولة:\n📱 الهاتف: 212612345678\n💬 واتساب متاح 24/7\n🏪 زيارة المتجر مرحب بها دائماً!",
		fr:       "📞 Contactez-nous facilement:\n📱 Téléphone: 212612345678\n💬 WhatsApp disponible 24/7\n🏪 Visites en magasin toujours bienvenues!",
	},
}

var defaultReply = rule{
	ar: "🤔 لم أفهم سؤالك تماماً. يمكنك السؤال عن:\n💰 الأسعار والتكاليف\n🔧 خدمات الإصلاح\n🛡️ الضمان\n🚚 التوصيل\n💬 أو راسلنا مباشرة: " + WhatsAppLink,
	fr: "🤔 Je n'ai pas bien compris. Vous pouvez demander:\n💰 Les prix\n🔧 Les réparations\n🛡️ La garantie\n🚚 La livraison\n💬 Ou écrivez-nous: " + WhatsAppLink,
}

// Respond returns the canned answer for a message. language is "ar" or
// "fr"; anything else falls back to French. Respond never returns an empty
// string.
func Respond(message, language string) string {
	input := strings.ToLower(message)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(input, kw) {
				return r.reply(language)
			}
		}
	}
	return defaultReply.reply(language)
}

func (r rule) reply(language string) string {
	if language == "ar" {
		return r.ar
	}
	return r.fr
}
