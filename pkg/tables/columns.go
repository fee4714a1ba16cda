package tables

func TestRunColumns() []Column {
	return []Column{
		ColumnDef("id", "ID", Sortable()),
		ColumnDef("short_code", "Short Code", Sortable(), Filterable(), RenderWith(RenderTestRunLink)),
		ColumnDef("dut_id", "DUT", Sortable(), Filterable()),
		ColumnDef("machine_hostname", "Machine", Filterable()),
		ColumnDef("user_name", "User", Filterable()),
		ColumnDef("test_name", "Test", Sortable(), Filterable()),
		ComponentColumnDef("Compare", RenderCompareBox),
	}
}

func ProjectColumns() []Column {
	return []Column{
		ColumnDef("short_code", "Short Code", Sortable(), Filterable(), RenderWith(RenderProjectLink)),
		ColumnDef("name", "Name", Sortable(), Filterable()),
		ComponentColumnDef("Actions", RenderEditButton),
	}
}

func SpecificationColumns() []Column {
	return []Column{
		ColumnDef("name", "Name", Sortable(), Filterable()),
		ColumnDef("unit", "Unit"),
		ColumnDef("minimum", "Minimum", Sortable()),
		ColumnDef("typical", "Typical", Sortable()),
		ColumnDef("maximum", "Maximum", Sortable()),
		ComponentColumnDef("Actions", RenderEditButton),
	}
}
