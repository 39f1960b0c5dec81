package incoterm

// Standard describes one of the Incoterms 2020 rules seeded on first start.
type Standard struct {
	Code    string
	Name    string
	Details Details
}

// Standard2020 returns the eleven Incoterms 2020 rules.
func Standard2020() []Standard {
	sea := func(g Group) Details { return Details{Group: g, Mode: ModeSeaInland} }
	anyMode := func(g Group) Details { return Details{Group: g, Mode: ModeAny} }

	exw := anyMode(GroupE)
	exw.ExportClearance = ClearanceBuyer
	cip := anyMode(GroupC)
	cip.InsuranceRequired = true
	ddp := anyMode(GroupD)
	ddp.ImportClearance = ClearanceSeller
	cif := sea(GroupC)
	cif.InsuranceRequired = true

	return []Standard{
		{Code: "EXW", Name: "Ex Works", Details: exw},
		{Code: "FCA", Name: "Free Carrier", Details: anyMode(GroupF)},
		{Code: "CPT", Name: "Carriage Paid To", Details: anyMode(GroupC)},
		{Code: "CIP", Name: "Carriage and Insurance Paid To", Details: cip},
		{Code: "DAP", Name: "Delivered at Place", Details: anyMode(GroupD)},
		{Code: "DPU", Name: "Delivered at Place Unloaded", Details: anyMode(GroupD)},
		{Code: "DDP", Name: "Delivered Duty Paid", Details: ddp},
		{Code: "FAS", Name: "Free Alongside Ship", Details: sea(GroupF)},
		{Code: "FOB", Name: "Free on Board", Details: sea(GroupF)},
		{Code: "CFR", Name: "Cost and Freight", Details: sea(GroupC)},
		{Code: "CIF", Name: "Cost, Insurance and Freight", Details: cif},
	}
}
