package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/ovz/kassa"
)

// Context is the business snapshot handed to the cashier model with every
// command, so it can answer questions about the day and price items off
// the menu.
type Context struct {
	SalesToday    int64
	ExpensesToday int64
	Menu          string // compact "id: name (priceр)" list, see kassa.MenuPrompt
}

const cashierPrompt = `
You are the Smart Cashier Assistant for a Doner Shop.

MENU ITEMS & IDs:
%s

Current Stats: Sales Today: %d RUB, Expenses: %d RUB.

USER SAYS: "%s"

YOUR TASK:
1. Identify ALL actions (Sales and/or Expenses).
2. If item is not in menu (e.g. "Adrenaline"), use ID "custom_item" and the price from user input.
3. 'confirmationText' must be a polite summary in Russian.
4. IMPORTANT: Output strictly valid JSON.

OUTPUT JSON SCHEMA:
{
  "actions": [
    {
       "type": "add_sale" | "add_expense" | "info",
       "data": {
          // For add_sale
          "items": [
             { "id": "sh_classic", "name": "Шаурма", "price": 300, "quantity": 2 },
             { "id": "custom_item", "name": "Adrenaline", "price": 150, "quantity": 1 }
          ],
          "paymentMethod": "Наличные" | "Карта",

          // For add_expense
          "amount": number,
          "category": "Ингредиенты" | "Зарплата" | "Такси" | "Уборка" | "Прочее",
          "description": string,
          "inventoryType": "lavash" | "bread_big" | "bread_small" | "none",
          "inventoryQty": number
       }
    }
  ],
  "confirmationText": string
}
`

// cashierSchema constrains the model output to the response shape above.
// The schema narrows what the model can emit; the reply is still parsed as
// fully untrusted input afterwards.
var cashierSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"confirmationText": {Type: genai.TypeString},
		"actions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"type": {Type: genai.TypeString, Enum: []string{"add_sale", "add_expense", "info"}},
					"data": {
						Type:     genai.TypeObject,
						Nullable: genai.Ptr(true),
						Properties: map[string]*genai.Schema{
							"items": {
								Type: genai.TypeArray,
								Items: &genai.Schema{
									Type: genai.TypeObject,
									Properties: map[string]*genai.Schema{
										"id":       {Type: genai.TypeString, Nullable: genai.Ptr(true)},
										"name":     {Type: genai.TypeString},
										"price":    {Type: genai.TypeNumber},
										"quantity": {Type: genai.TypeNumber},
									},
								},
							},
							"paymentMethod": {Type: genai.TypeString, Nullable: genai.Ptr(true)},
							"amount":        {Type: genai.TypeNumber, Nullable: genai.Ptr(true)},
							"category":      {Type: genai.TypeString, Nullable: genai.Ptr(true)},
							"description":   {Type: genai.TypeString, Nullable: genai.Ptr(true)},
							"inventoryType": {Type: genai.TypeString, Nullable: genai.Ptr(true)},
							"inventoryQty":  {Type: genai.TypeNumber, Nullable: genai.Ptr(true)},
						},
					},
				},
			},
		},
	},
}

// ParseCommand sends one operator utterance to the cashier model and
// normalizes the reply into ledger actions. A transport failure returns an
// error; an unusable reply returns a *kassa.UpstreamFormatError.
func (a *Assistant) ParseCommand(ctx context.Context, input string, c Context) (*kassa.Response, error) {
	prompt := fmt.Sprintf(cashierPrompt, c.Menu, c.SalesToday, c.ExpensesToday, input)

	resp, err := a.client.Models.GenerateContent(ctx, flashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   cashierSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("cashier model call failed: %w", err)
	}
	return kassa.ParseResponse(resp.Text())
}
