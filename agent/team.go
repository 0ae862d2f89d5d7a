package agent

import (
	"github.com/etnz/deals"
	"github.com/etnz/deals/renderer"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user keeps a ledger of deposit deals. Each deal has a gross amount in local
			currency, a fee, an exchange rate and a list of members. A quarter of the converted
			amount is the pool, shared equally between the members of the deal.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They keep context of your previous questions.

			Devise a plan of questions to ask to each experts and come up with the best response
			to the user's request. Answer in the user's language.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewEconomist returns an expert grounded on Google Search, for questions
// about exchange rates and markets.
func NewEconomist(model string) *Expert {
	return &Expert{
		Name: "Economist",
		Description: `This is an economist, aware of currencies, exchange rates and payment
		systems. Ask the Economist whenever you need recent or grounding information, like
		the current exchange rate between two currencies.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an economist. You Leverage Google Search to ground your assertions,
			in particular about exchange rates, always give the date of a rate you quote.
				`}}},
		},
	}
}

// NewAccountant returns the expert reading the ledger of b.
func NewAccountant(model string, b *deals.Book, opts renderer.Options) *Expert {
	lib := Functions(b, opts)

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He is in charge of reading the user's deals ledger.
		He can list the deals of a day and compute the shares earned by every member over
		a payroll week, a month or any range of days.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's deals ledger.
				Use the Tools to read the deals and the reports, never invent a figure.
				A payroll week runs from Tuesday to the following Monday.
				Dates are written D.M (e.g. 21.07) in the current year, or 'today'.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}
