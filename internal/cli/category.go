package cli

type CategoryCmd struct {
	Add  CategoryAddCmd  `cmd:"" help:"Add a custom category."`
	List CategoryListCmd `cmd:"" help:"List categories." default:"1"`
}

type CategoryAddCmd struct {
	Name  string `arg:"" help:"Category name."`
	Icon  string `help:"Icon name." default:"tag.fill"`
	Color string `help:"Color name." default:"gray"`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	category, err := ctx.Tracker.AddCustomCategory(c.Name, c.Icon, c.Color)
	if err != nil {
		return err
	}
	ctx.printf("Added category: %s\n", category.Name)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	for _, cat := range ctx.Tracker.AllCategories() {
		kind := "built-in"
		if cat.IsCustom {
			kind = "custom"
		}
		ctx.printf("%s %s\n", labelStyle.Render(cat.Name), mutedStyle.Render(kind+" · "+cat.ID+" · "+cat.ColorName))
	}
	return nil
}
