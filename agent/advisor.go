package agent

import (
	"context"
	"fmt"

	compound "github.com/MatthewLSnell/Compound-Interest-Calculator"
	"github.com/MatthewLSnell/Compound-Interest-Calculator/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user is planning savings: they want to know what their money grows into,
			what it takes to reach a goal, and how schedules and rates change the outcome.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and keep the context of your previous questions.
			The Planner runs the actual calculations, never compute interest yourself:
			ask the Planner and relay its figures verbatim.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert that grounds advice in current market data.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a market analyst,
		aware of current savings rates, inflation and the main account types.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a market analyst. You can search and find anything related to
			savings accounts, interest rates, inflation and market returns. You
			leverage Google Search to ground your assertions in solid truth, and you
			know how to relate the latest figures to the user's savings plan.
				`}}},
		},
	}
}

// NewPlanner returns the expert that operates the compound-interest
// calculator.
func NewPlanner() *Expert {
	lib := []Function{projectFunc(), breakdownFunc(), goalFunc()}

	return &Expert{
		Name: "Planner",
		Description: `This is the Planner. It operates the compound-interest calculator:
		it can project the future value of a savings plan, break it down year by year,
		and compute the contribution required to reach a target.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a savings planner operating a compound-interest calculator.
				Use the available tools for every figure you give, do not compute
				interest yourself. Amounts are in the user's currency (USD unless
				they say otherwise), rates are annual percentages, schedules are
				credits per year (12 is monthly). When the user is vague, assume
				monthly compounding and monthly deposits and say so.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// scenarioSchema describes the scenario arguments shared by every tool.
func scenarioSchema() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"principal":    {Type: genai.TypeNumber, Description: "Initial lump-sum investment."},
		"contribution": {Type: genai.TypeNumber, Description: "Recurring contribution amount."},
		"years":        {Type: genai.TypeInteger, Description: "Investment horizon in years."},
		"rate":         {Type: genai.TypeNumber, Description: "Annual interest rate in percent."},
		"compounding":  {Type: genai.TypeInteger, Description: "Interest credits per year (12 for monthly)."},
		"deposits":     {Type: genai.TypeInteger, Description: "Contribution credits per year (12 for monthly)."},
	}
}

// scenarioFromArgs rebuilds a scenario from tool-call arguments, defaulting
// the schedules to monthly. genai delivers every number as a float64.
func scenarioFromArgs(args map[string]any) (compound.Scenario, error) {
	num := func(key string, def float64) float64 {
		if v, ok := args[key].(float64); ok {
			return v
		}
		return def
	}
	s := compound.NewScenario("USD",
		num("principal", 0),
		num("contribution", 0),
		int(num("years", 0)),
		num("rate", 0),
		compound.Frequency(num("compounding", 12)),
		compound.Frequency(num("deposits", 12)),
	)
	return s, s.Validate()
}

func respond(id, name string, markdown string, err error) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
	if err != nil {
		fresp.Response["error"] = err.Error()
		return fresp
	}
	fresp.Response["report"] = markdown
	return fresp
}

func projectFunc() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "project_future_value",
			Description: "Compute the future value of a savings plan, its total contributions and interest.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: scenarioSchema(),
				Required:   []string{"years", "rate"},
			},
		},
		Fn: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := scenarioFromArgs(args)
			if err != nil {
				return respond(id, "project_future_value", "", err)
			}
			p, err := compound.Project(s)
			if err != nil {
				return respond(id, "project_future_value", "", err)
			}
			return respond(id, "project_future_value", renderer.ProjectionMarkdown(&p), nil)
		},
	}
}

func breakdownFunc() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "annual_breakdown",
			Description: "Simulate a savings plan year by year: start balance, interest, contributions, end balance.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: scenarioSchema(),
				Required:   []string{"years", "rate"},
			},
		},
		Fn: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := scenarioFromArgs(args)
			if err != nil {
				return respond(id, "annual_breakdown", "", err)
			}
			records, err := compound.Breakdown(s)
			if err != nil {
				return respond(id, "annual_breakdown", "", err)
			}
			return respond(id, "annual_breakdown", renderer.BreakdownMarkdown(records), nil)
		},
	}
}

func goalFunc() Function {
	properties := scenarioSchema()
	properties["target"] = &genai.Schema{Type: genai.TypeNumber, Description: "Target future value to reach."}

	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "solve_contribution",
			Description: "Compute the recurring contribution required to reach a target future value.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: properties,
				Required:   []string{"target", "years", "rate"},
			},
		},
		Fn: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := scenarioFromArgs(args)
			if err != nil {
				return respond(id, "solve_contribution", "", err)
			}
			target, ok := args["target"].(float64)
			if !ok {
				return respond(id, "solve_contribution", "", fmt.Errorf("target must be a number, got %T", args["target"]))
			}
			g, err := compound.SolveContribution(s, compound.M(target, s.Currency()))
			if err != nil {
				return respond(id, "solve_contribution", "", err)
			}
			return respond(id, "solve_contribution", renderer.GoalMarkdown(&g), nil)
		},
	}
}
