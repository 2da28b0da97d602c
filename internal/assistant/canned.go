package assistant

import (
	"fmt"
	"strings"

	"github.com/eatwell/nourish-cli/internal/model"
)

// glossaryEntry is a plain-language explanation of a health term.
type glossaryEntry struct {
	term        string
	simple      string
	detail      string
	whyMatters  string
	foodConnect string
}

// glossary is matched in declaration order: a message mentioning a term (or
// its first four letters, for terms longer than three characters) gets that
// entry.
var glossary = []glossaryEntry{
	{
		term:        "MTHFR",
		simple:      "A gene that helps your body use vitamins, especially folate (a B vitamin)",
		detail:      "MTHFR converts folate into a usable form. Some people have gene variants (C677T, A1298C) that slow this down, which makes it harder to process regular folate into methylfolate, the active form. The fix is eating more folate-rich foods or taking methylfolate.",
		whyMatters:  "About 40% of people have at least one copy of C677T, so this is very common. If you have a variant, you may need MORE folate-rich foods than average.",
		foodConnect: "spinach, lentils, asparagus, broccoli, avocado, fortified cereals",
	},
	{
		term:        "Methylation",
		simple:      "A process your body uses to turn genes on/off and detoxify",
		detail:      "Think of methylation like light switches in your house. Your body is constantly flipping these switches to control which genes are active. Poor methylation can affect mood, energy, and health.",
		whyMatters:  "Supporting methylation with the right nutrients helps your body run smoothly.",
		foodConnect: "eggs, leafy greens, beets",
	},
	{
		term:        "Vitamin B12",
		simple:      "A vitamin needed for energy, brain function, and making red blood cells",
		detail:      "B12 is fuel for your brain and blood cells. Without enough, you might feel tired, foggy, or weak. Your body can't make B12 - you must get it from food (meat, eggs, fortified foods) or supplements.",
		whyMatters:  "Low B12 is common and causes fatigue and brain fog. Many people don't get enough.",
		foodConnect: "eggs, sardines, fortified cereals, nutritional yeast",
	},
	{
		term:        "Vitamin D",
		simple:      "The 'sunshine vitamin' that helps bones, immune system, and mood",
		detail:      "Your skin makes Vitamin D in sunlight, but many people don't get enough sun, especially in winter or with darker skin. Low Vitamin D is linked to weak bones, getting sick often, and feeling down.",
		whyMatters:  "Most people are low in Vitamin D without knowing it. It affects almost every part of your body.",
		foodConnect: "fortified milk, salmon, egg yolks, mushrooms",
	},
	{
		term:        "Iron",
		simple:      "A mineral that carries oxygen in your blood",
		detail:      "Iron is a delivery truck that carries oxygen to every cell in your body. Without enough, cells don't get the oxygen they need, making you feel exhausted, cold, or short of breath.",
		whyMatters:  "Iron deficiency is the #1 nutritional deficiency worldwide, especially in women.",
		foodConnect: "spinach, lentils, beef, fortified cereals",
	},
	{
		term:        "CRP",
		simple:      "A blood test that measures inflammation (swelling) in your body",
		detail:      "CRP (C-Reactive Protein) is a smoke alarm for inflammation. When it's high, something in your body is irritated or fighting, even if you can't feel it. Chronic inflammation is linked to heart disease, diabetes, and many other conditions.",
		whyMatters:  "High CRP means your body is stressed. Anti-inflammatory foods can help calm it down.",
		foodConnect: "berries, fatty fish, turmeric, leafy greens, olive oil",
	},
	{
		term:        "Homocysteine",
		simple:      "An amino acid that can damage blood vessels when too high",
		detail:      "Homocysteine is a natural byproduct in your blood, but high levels scratch and damage your blood vessel walls. B vitamins (especially folate and B12) help keep it low.",
		whyMatters:  "High homocysteine increases heart disease risk. B vitamins from food can lower it.",
		foodConnect: "leafy greens, eggs, fortified cereals",
	},
	{
		term:        "Fasting Glucose",
		simple:      "Blood sugar level after not eating for 8+ hours",
		detail:      "This test shows how well your body manages sugar. High fasting glucose means your body is having trouble moving sugar from blood into cells - an early warning sign for diabetes.",
		whyMatters:  "Catching high glucose early lets you make food changes before diabetes develops.",
		foodConnect: "fiber-rich foods: oats, beans, vegetables",
	},
	{
		term:        "Omega-3 Fatty Acids",
		simple:      "Healthy fats that reduce inflammation and support brain health",
		detail:      "Omega-3s help everything run smoothly, especially your brain, heart, and joints. Most Americans don't get enough because we don't eat much fish.",
		whyMatters:  "Omega-3s fight inflammation and support mental health. Very important for brain function.",
		foodConnect: "salmon, sardines, walnuts, flaxseed, chia seeds",
	},
	{
		term:        "SNAP",
		simple:      "Government food assistance program (food stamps)",
		detail:      "SNAP (Supplemental Nutrition Assistance Program) provides money on an EBT card to buy groceries. It's accepted at most grocery stores and many farmers markets. There's no shame in using it - it's there to help.",
		whyMatters:  "SNAP can significantly expand your food budget and access to healthy options.",
		foodConnect: "Most foods except hot prepared foods and alcohol",
	},
	{
		term:        "WIC",
		simple:      "Nutrition program for pregnant women, new mothers, and young children",
		detail:      "WIC (Women, Infants, and Children) provides specific healthy foods plus nutrition education. It covers things like milk, eggs, whole grains, fruits, and vegetables.",
		whyMatters:  "WIC ensures mothers and children get key nutrients during critical growth periods.",
		foodConnect: "milk, eggs, whole grain bread, fruits, vegetables, infant formula",
	},
	{
		term:        "Fiber",
		simple:      "The part of plant foods your body can't digest - but it keeps you healthy",
		detail:      "Fiber sweeps through your digestive system, keeping things moving, feeding good gut bacteria, and helping control blood sugar.",
		whyMatters:  "Most people only get half the fiber they need. Low fiber is linked to constipation, high cholesterol, and blood sugar problems.",
		foodConnect: "oats, beans, lentils, apples, berries, broccoli, whole grains",
	},
	{
		term:        "Magnesium",
		simple:      "A mineral that helps muscles relax, supports sleep, and calms the nervous system",
		detail:      "Magnesium is involved in over 300 body processes. It helps muscles relax after they contract, supports deep sleep, and keeps your heart rhythm steady.",
		whyMatters:  "Low magnesium is linked to muscle cramps, anxiety, poor sleep, and heart palpitations.",
		foodConnect: "pumpkin seeds, almonds, spinach, black beans, dark chocolate, avocado",
	},
	{
		term:        "Folate",
		simple:      "A B vitamin essential for cell growth and making DNA",
		detail:      "Folate (B9) helps your body make new cells and is especially critical during pregnancy. 'Folic acid' is the synthetic form in supplements; 'folate' is the natural form in food.",
		whyMatters:  "Getting enough folate is crucial for preventing birth defects and supporting overall cell health.",
		foodConnect: "leafy greens, lentils, asparagus, broccoli, fortified cereals, avocado",
	},
}

// symptomExplanation is the plain-language card behind a symptom keyword.
type symptomExplanation struct {
	name         string
	whatItMeans  string
	commonCauses string
	foodHelp     string
}

var symptomExplanations = map[string]symptomExplanation{
	"fatigue": {
		name:         "Fatigue",
		whatItMeans:  "Feeling tired even after rest",
		commonCauses: "Low iron, low B12, poor sleep, thyroid issues, inflammation",
		foodHelp:     "Iron-rich foods (spinach, lentils), B12 foods (eggs, fortified cereals), anti-inflammatory foods",
	},
	"brain_fog": {
		name:         "Brain Fog",
		whatItMeans:  "Difficulty concentrating, memory issues, feeling 'cloudy'",
		commonCauses: "Low B12, poor methylation, inflammation, blood sugar swings",
		foodHelp:     "Omega-3s (salmon, walnuts), B vitamins (eggs, greens), stable protein/fiber meals",
	},
	"joint_pain": {
		name:         "Joint Pain",
		whatItMeans:  "Aching, stiffness, or swelling in joints",
		commonCauses: "Inflammation, omega-3 deficiency, vitamin D deficiency",
		foodHelp:     "Fatty fish, turmeric, ginger, berries, leafy greens",
	},
	"anxiety": {
		name:         "Anxiety",
		whatItMeans:  "Excessive worry, nervousness, or unease",
		commonCauses: "Magnesium deficiency, B vitamin deficiency, blood sugar swings, gut issues",
		foodHelp:     "Magnesium foods (pumpkin seeds, spinach), complex carbs, fermented foods",
	},
	"digestive_issues": {
		name:         "Digestive Issues",
		whatItMeans:  "Bloating, constipation, diarrhea, or stomach pain",
		commonCauses: "Low fiber, food sensitivities, poor gut bacteria balance",
		foodHelp:     "Fiber (oats, beans, vegetables), fermented foods (yogurt), plenty of water",
	},
	"weak_immunity": {
		name:         "Weak Immunity",
		whatItMeans:  "Getting sick often, slow healing",
		commonCauses: "Low vitamin D, low zinc, low vitamin C, poor nutrition overall",
		foodHelp:     "Citrus fruits, bell peppers, mushrooms, fortified milk, pumpkin seeds",
	},
}

// symptomKeywords maps message keywords to symptom cards, in match order.
var symptomKeywords = []struct {
	keyword string
	symptom string
}{
	{"fatigue", "fatigue"}, {"tired", "fatigue"}, {"exhausted", "fatigue"}, {"no energy", "fatigue"},
	{"brain fog", "brain_fog"}, {"foggy", "brain_fog"}, {"concentrate", "brain_fog"}, {"memory", "brain_fog"},
	{"joint", "joint_pain"}, {"arthritis", "joint_pain"},
	{"anxiety", "anxiety"}, {"anxious", "anxiety"}, {"nervous", "anxiety"}, {"worry", "anxiety"},
	{"digest", "digestive_issues"}, {"stomach", "digestive_issues"}, {"bloat", "digestive_issues"}, {"gut", "digestive_issues"},
	{"sick", "weak_immunity"}, {"immunity", "weak_immunity"}, {"immune", "weak_immunity"},
}

// CannedResponse answers a message from the built-in knowledge base. It is
// the fallback path when the model is unavailable, and its rules run in a
// fixed order: greetings, usage, glossary, symptoms, food advice, benefits,
// labs, personalized priorities, then a help prompt.
func CannedResponse(result model.PipelineResult, message string) string {
	lower := strings.ToLower(strings.TrimSpace(message))

	for _, g := range []string{"hi", "hello", "hey", "help", "start"} {
		if lower == g || strings.HasPrefix(lower, g+" ") {
			return greetingResponse
		}
	}

	for _, q := range []string{"how do i use", "how does this work", "what do i do", "getting started", "how to start"} {
		if strings.Contains(lower, q) {
			return usageResponse
		}
	}

	for _, entry := range glossary {
		termLower := strings.ToLower(entry.term)
		if strings.Contains(lower, termLower) || (len(termLower) > 3 && strings.Contains(lower, termLower[:4])) {
			return fmt.Sprintf("%s\n\nSimple explanation: %s\n\nMore detail: %s\n\nWhy it matters: %s\n\nFoods that help: %s",
				entry.term, entry.simple, entry.detail, entry.whyMatters, entry.foodConnect)
		}
	}

	for _, kw := range symptomKeywords {
		if !strings.Contains(lower, kw.keyword) {
			continue
		}
		info, ok := symptomExplanations[kw.symptom]
		if !ok {
			continue
		}
		return fmt.Sprintf("About %s:\n\nWhat it means: %s\n\nCommon causes: %s\n\nFoods that can help: %s\n\nRun 'plan' with your profile for personalized food recommendations.",
			info.name, info.whatItMeans, info.commonCauses, info.foodHelp)
	}

	for _, q := range []string{"what should i eat", "what foods", "best foods", "food for", "foods for", "what to eat"} {
		if strings.Contains(lower, q) {
			return foodAdviceResponse(lower)
		}
	}

	if strings.Contains(lower, "budget") || strings.Contains(lower, "cheap") ||
		strings.Contains(lower, "afford") || strings.Contains(lower, "money") {
		return budgetResponse
	}

	for _, k := range []string{"lab", "blood test", "bloodwork", "test result", "numbers"} {
		if strings.Contains(lower, k) {
			return labResponse
		}
	}

	if strings.Contains(lower, "my") || strings.Contains(lower, "mine") || strings.Contains(lower, "for me") {
		if personalized := personalizedResponse(result); personalized != "" {
			return personalized
		}
	}

	return defaultResponse
}

func foodAdviceResponse(lower string) string {
	if strings.Contains(lower, "inflam") {
		return `Anti-inflammatory foods:

Best choices:
- Fatty fish (salmon, sardines)
- Berries (blueberries, strawberries)
- Leafy greens (spinach, kale)
- Turmeric and ginger
- Olive oil
- Nuts (walnuts, almonds)

Foods to limit:
- Processed foods
- Sugary drinks
- Refined carbs
- Fried foods`
	}
	if strings.Contains(lower, "energy") || strings.Contains(lower, "tired") {
		return `Foods for energy:

- Iron-rich: spinach, lentils, beans, fortified cereals
- B12-rich: eggs, fortified cereals, nutritional yeast
- Complex carbs: oats, brown rice, quinoa
- Healthy fats: nuts, avocado, olive oil

Also make sure you're drinking enough water. Low energy often signals low iron or B vitamins.`
	}
	return `To give you the best food recommendations, I need to know more about your health needs.

Ask me about a specific condition, like:
- 'What foods help with inflammation?'
- 'What should I eat for more energy?'
- 'What foods are good for brain health?'`
}

func personalizedResponse(result model.PipelineResult) string {
	if len(result.Needs.Needs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Based on your health profile, your top nutrient priorities are:\n")
	for _, need := range result.Needs.TopPriorities(3) {
		reason := need.Reason
		if len(reason) > 80 {
			reason = reason[:80] + "..."
		}
		fmt.Fprintf(&b, "- %s - %s\n", need.Nutrient, reason)
	}
	b.WriteString("\nYour shopping list has foods that address these needs.")
	return b.String()
}

const greetingResponse = `Hello! I'm here to help you understand nutrition and health. Here are some things you can ask me:

- "What is MTHFR?" - Learn about health terms
- "Why do I need B12?" - Understand nutrients
- "What foods help with fatigue?" - Get food suggestions
- "What is SNAP?" - Learn about food assistance

What would you like to know?`

const usageResponse = `How to use this tool:

1. Build a profile JSON with your budget, location, transportation, symptoms, family history, and lab results (optional but helpful)
2. Run 'plan --profile your-profile.json' to get personalized recommendations
3. Use 'ask' to explore results: 'why <item>' for shopping items, 'explain <nutrient>' for priorities

Tip: run 'plan --demo' to see an example first.`

const budgetResponse = `Eating healthy on a budget:

Budget-friendly nutritious foods:
- Eggs - cheap protein with B12
- Canned beans - protein and fiber for ~$1
- Frozen vegetables - just as nutritious as fresh
- Oats - filling breakfast for pennies
- Bananas - cheapest fruit, good nutrition
- Peanut butter - protein that lasts

Free resources:
- Food pantries (the store finder shows nearby ones)
- SNAP doubles at many farmers markets

Set your weekly budget in your profile and affordable options get prioritized automatically.`

const labResponse = `Understanding your lab results:

Vitamin B12 (pg/mL): below 300 = deficient, 300-500 = low-normal, 500-900 = optimal
Vitamin D (ng/mL): below 20 = deficient, 20-30 = insufficient, 30-60 = optimal
Iron (mcg/dL): below 60 = low, 60-170 = normal
CRP (mg/L, inflammation): below 1 = low, 1-3 = moderate, above 3 = high

Add your lab values to your profile and the analysis will explain what they mean for YOUR health.`

const defaultResponse = `I'm not sure I understood that. Here are some things you can ask me:

- Health terms: "What is MTHFR?" "What does CRP mean?"
- Symptoms: "Why am I tired?" "What helps with brain fog?"
- Food advice: "What foods reduce inflammation?"
- Benefits: "What is SNAP?" "How does WIC work?"

Or just describe what you're curious about and I'll try to help.`
