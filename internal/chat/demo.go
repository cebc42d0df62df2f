package chat

import (
	"strings"

	"github.com/ryanuber/go-glob"
)

// Canned responses used when no API key is configured.
const (
	BudgetResponse = "Great question about budgeting! 💰 For someone earning $3000/month, I'd recommend the 50/30/20 rule as a starting point:\n\n" +
		"• 50% ($1500) for needs: rent, utilities, groceries, minimum debt payments\n" +
		"• 30% ($900) for wants: dining out, entertainment, hobbies\n" +
		"• 20% ($600) for savings and debt repayment\n\n" +
		"Since you're young, try to prioritize building that emergency fund first - even $25/week adds up! What's your biggest expense category right now?"

	InvestingResponse = "Love that you're thinking about investing at 22! 🚀 Starting early is your biggest advantage thanks to compound interest.\n\n" +
		"Here's my beginner roadmap:\n" +
		"1. Build a small emergency fund ($1000)\n" +
		"2. Start with a Roth IRA - you can contribute up to $6500/year\n" +
		"3. Consider low-cost index funds (like VTSAX or VTI)\n" +
		"4. Start small - even $50/month makes a difference!\n\n" +
		"Apps like Acorns or M1 Finance make it super easy to start. What's holding you back from starting - is it the minimum amounts or just not knowing where to begin?"

	EmergencyResponse = "Smart thinking about emergency funds! 🛡️ For Gen Z, I recommend starting with $1000 as your first milestone, then building to 3-6 months of expenses.\n\n" +
		"Why $1000 first? It covers most common emergencies (car repair, medical bill, job gap) without feeling overwhelming.\n\n" +
		"Quick tips:\n" +
		"• Open a high-yield savings account (2-4% APY)\n" +
		"• Automate $25-50/week transfers\n" +
		"• Keep it separate from checking to avoid temptation\n" +
		"• Use apps like Qapital or Digit for automatic saving\n\n" +
		"What's your current monthly expenses? That'll help determine your full emergency fund goal!"

	DebtResponse = "Credit card debt is tough, but $5000 is totally manageable with the right strategy! 💪\n\n" +
		"Here's the game plan:\n" +
		"1. **Avalanche method**: List all debts by interest rate, pay minimums on all, attack highest rate first\n" +
		"2. **Snowball method**: Pay smallest balance first for psychological wins\n\n" +
		"For $5000, if you can pay $200/month extra:\n" +
		"• At 18% APR: paid off in ~2 years, save $1000+ in interest\n" +
		"• Consider balance transfer to 0% APR card if you qualify\n\n" +
		"Side hustle ideas: food delivery, freelancing, selling stuff you don't need. What's the interest rate on your cards?"

	HomeResponse = "House planning at your age is awesome! 🏠 5 years gives you solid time to prepare.\n\n" +
		"Typical costs to save for:\n" +
		"• Down payment: 10-20% of home price\n" +
		"• Closing costs: 2-5% of home price\n" +
		"• Moving expenses: $2000-5000\n" +
		"• Emergency repairs: $5000-10000\n\n" +
		"For a $300k home, you'd need $30k-60k down payment plus $15k-20k for other costs.\n\n" +
		"Strategy:\n" +
		"• High-yield savings for down payment\n" +
		"• Improve credit score (aim for 740+)\n" +
		"• Research first-time buyer programs\n" +
		"• Consider house hacking (rent out rooms)\n\n" +
		"What's your target home price range and current savings rate?"

	CreditResponse = "Building credit as a young adult is crucial! 📈 Here's the roadmap:\n\n" +
		"**Start with:**\n" +
		"• Student credit card or secured card\n" +
		"• Become authorized user on parent's card\n" +
		"• Credit builder loan from credit union\n\n" +
		"**Golden rules:**\n" +
		"• Keep utilization under 30% (ideally under 10%)\n" +
		"• Pay full balance monthly, never just minimum\n" +
		"• Don't close old cards (hurts credit age)\n" +
		"• Set up autopay to never miss payments\n\n" +
		"**Monitor with:** Credit Karma, Experian app, or bank's free credit score\n\n" +
		"**Timeline:** 6-12 months to see real improvement\n\n" +
		"What's your current credit situation - no credit history or rebuilding from mistakes?"

	GenericResponse = "Thanks for your question! 😊 As your AI financial advisor, I'm here to help with all aspects of your financial journey.\n\n" +
		"I can help you with:\n" +
		"• Creating budgets and saving strategies\n" +
		"• Investment advice for beginners\n" +
		"• Debt payoff plans\n" +
		"• Credit building tips\n" +
		"• Goal-specific saving (emergency fund, house, etc.)\n\n" +
		"Could you be more specific about what financial area you'd like to focus on? The more details you share, the better I can tailor my advice to your situation!"
)

// topic maps keyword patterns to a canned response. A message matches if
// all patterns of any alternative match.
type topic struct {
	alternatives [][]string
	response     string
}

// Topics are checked in order, the first match wins.
var topics = []topic{
	{[][]string{{"*budget*"}, {"*$3000*"}}, BudgetResponse},
	{[][]string{{"*invest*"}, {"*22 years old*"}}, InvestingResponse},
	{[][]string{{"*emergency fund*"}}, EmergencyResponse},
	{[][]string{{"*credit card debt*"}, {"*$5000*"}}, DebtResponse},
	{[][]string{{"*home*"}, {"*house*"}}, HomeResponse},
	{[][]string{{"*credit*", "*build*"}}, CreditResponse},
}

// DemoResponse returns the canned response for message. Matching is case
// insensitive.
func DemoResponse(message string) string {
	lower := strings.ToLower(message)

	for _, t := range topics {
		for _, patterns := range t.alternatives {
			if matchesAll(patterns, lower) {
				return t.response
			}
		}
	}

	return GenericResponse
}

func matchesAll(patterns []string, s string) bool {
	for _, p := range patterns {
		if !glob.Glob(p, s) {
			return false
		}
	}

	return true
}
