package schemas

var CustomerSchema = Schema{
	Name: "customer",
	Fields: []Field{
		{Name: "name", Required: true, Rules: []Rule{String(), Length(1, 255)}},
		{Name: "email", Required: true, Rules: []Rule{Email(), Length(0, 320)}},
		{Name: "phone", Required: true, Rules: []Rule{String(), Length(0, 15)}},
	},
}

var ProductSchema = Schema{
	Name: "product",
	Fields: []Field{
		{Name: "name", Required: true, Rules: []Rule{String(), Length(1, 0)}},
		{Name: "price", Required: true, Rules: []Rule{Float(), Min(0)}},
		{Name: "stock_quantity", Required: true, Rules: []Rule{Integer(), Min(0)}},
	},
}

var OrderSchema = Schema{
	Name: "order",
	Fields: []Field{
		{Name: "date", Required: true, Rules: []Rule{Date()}},
		{Name: "expected_delivery", Required: true, Rules: []Rule{Date()}},
		{Name: "customer_id", Required: true, Rules: []Rule{Integer()}},
	},
}

var CustomerAccountSchema = Schema{
	Name: "customer account",
	Fields: []Field{
		{Name: "username", Required: true, Rules: []Rule{String(), Length(8, 0)}},
		{Name: "password", Required: true, Rules: []Rule{String(), Password()}},
		{Name: "customer_id", Required: true, Rules: []Rule{Integer()}},
	},
}
