package fees

import "testing"

func TestReconcileScenario(t *testing.T) {
	s := Structure{
		"1st Year": {{Name: "Tuition Fee", Amount: 10000, TermName: Term1}},
	}
	payments := []Payment{{FeeType: "1st Year - Term 1 - Tuition Fee", Amount: 4000}}

	tbl := Reconcile(s, payments)
	got := tbl["1st Year"]["Tuition Fee"][Term1]
	want := Cell{Total: 10000, Paid: 4000, Concession: 0, Balance: 6000}
	if got != want {
		t.Errorf("cell = %+v, want %+v", got, want)
	}
}

func TestReconcileUnmatchedTag(t *testing.T) {
	s := Structure{
		"1st Year": {{Name: "Tuition Fee", Amount: 10000, TermName: Term1}},
	}
	payments := []Payment{
		{FeeType: "Invoice: Library Fine", Amount: 500},
		{FeeType: "1st Year - Term 1", Amount: 500}, // two segments only
	}

	tbl := Reconcile(s, payments)
	if got := tbl["1st Year"]["Tuition Fee"][Term1].Paid; got != 0 {
		t.Errorf("paid = %v, want 0 (unparsable tags must be skipped)", got)
	}
}

func TestReconcilePaymentWithoutStructureCell(t *testing.T) {
	s := Structure{
		"1st Year": {{Name: "Tuition Fee", Amount: 10000, TermName: Term1}},
	}
	payments := []Payment{{FeeType: "1st Year - Term 1 - Lab Fee", Amount: 700}}

	tbl := Reconcile(s, payments)
	if _, ok := tbl["1st Year"]["Lab Fee"]; ok {
		t.Error("payment against an undefined cell must not create one")
	}
}

func TestReconcileBalanceNonNegative(t *testing.T) {
	s := Structure{
		"1st Year": {{Name: "Tuition Fee", Amount: 1000, TermName: Term1}},
	}
	payments := []Payment{{FeeType: "1st Year - Term 1 - Tuition Fee", Amount: 5000}}

	tbl := Reconcile(s, payments)
	got := tbl["1st Year"]["Tuition Fee"][Term1]
	if got.Balance != 0 {
		t.Errorf("balance = %v, want 0 (overpayment clamps)", got.Balance)
	}
	if got.Paid != 5000 {
		t.Errorf("paid = %v, want 5000", got.Paid)
	}
}

func TestReconcileDuplicateItemsSummed(t *testing.T) {
	s := Structure{
		"1st Year": {
			{Name: "Tuition Fee", Amount: 1000, TermName: Term1},
			{Name: "Tuition Fee", Amount: 2000, TermName: Term1},
		},
	}
	tbl := Reconcile(s, nil)
	if got := tbl["1st Year"]["Tuition Fee"][Term1].Total; got != 3000 {
		t.Errorf("total = %v, want 3000 (duplicates must sum, not drop)", got)
	}
}

func TestReconcileAdditivity(t *testing.T) {
	s := Structure{
		"1st Year": {
			{Name: "Tuition Fee", Amount: 10000, TermName: Term1},
			{Name: "Tuition Fee", Amount: 10000, TermName: Term2},
		},
	}
	all := []Payment{
		{FeeType: "1st Year - Term 1 - Tuition Fee", Amount: 1500},
		{FeeType: "1st Year - Term 2 - Tuition Fee", Amount: 2000},
		{FeeType: "1st Year - Term 1 - Tuition Fee", Amount: 500},
	}

	whole := Reconcile(s, all)
	first := Reconcile(s, all[:1])
	rest := Reconcile(s, all[1:])

	for _, term := range []string{Term1, Term2} {
		w := whole["1st Year"]["Tuition Fee"][term].Paid
		split := first["1st Year"]["Tuition Fee"][term].Paid +
			rest["1st Year"]["Tuition Fee"][term].Paid
		if w != split {
			t.Errorf("%s: paid %v via whole list, %v via split", term, w, split)
		}
	}
}

func TestYearSummaryConcessionClamp(t *testing.T) {
	s := Structure{
		"1st Year": {
			{Name: "Tuition Fee", Amount: 5000, TermName: Term1},
			{Name: ConcessionName, Concession: 6000, TermName: TermTotal},
		},
	}
	tbl := Reconcile(s, nil)

	sum := YearSummary(tbl, "1st Year")
	if sum.Total != 5000 || sum.Concession != 6000 {
		t.Fatalf("summary = %+v, want total 5000, concession 6000", sum)
	}
	if sum.Balance != 0 {
		t.Errorf("balance = %v, want 0 (concession above total clamps)", sum.Balance)
	}
}

func TestReconcileZeroTotalSettled(t *testing.T) {
	// A padded zero-amount cell that receives a payment reads as settled,
	// not flagged as an anomaly.
	s := Structure{
		"1st Year": {{Name: "Tuition Fee", Amount: 0, TermName: Term3}},
	}
	payments := []Payment{{FeeType: "1st Year - Term 3 - Tuition Fee", Amount: 1000}}

	tbl := Reconcile(s, payments)
	got := tbl["1st Year"]["Tuition Fee"][Term3]
	if got.Balance != 0 || got.Paid != 1000 {
		t.Errorf("cell = %+v, want balance 0, paid 1000", got)
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want Target
	}{
		{
			name: "term fee",
			tag:  "1st Year - Term 1 - Tuition Fee",
			want: Target{Kind: TargetTermFee, Year: "1st Year", Term: "Term 1", FeeType: "Tuition Fee"},
		},
		{
			name: "fee type containing the delimiter",
			tag:  "2nd Year - Term 3 - Hostel - Mess Fee",
			want: Target{Kind: TargetTermFee, Year: "2nd Year", Term: "Term 3", FeeType: "Hostel - Mess Fee"},
		},
		{
			name: "invoice label",
			tag:  "Invoice: Library Fine",
			want: Target{Kind: TargetOther, Label: "Invoice: Library Fine"},
		},
		{
			name: "two segments",
			tag:  "1st Year - Term 1",
			want: Target{Kind: TargetOther, Label: "1st Year - Term 1"},
		},
		{
			name: "empty",
			tag:  "",
			want: Target{Kind: TargetOther, Label: ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTarget(tt.tag); got != tt.want {
				t.Errorf("ParseTarget(%q) = %+v, want %+v", tt.tag, got, tt.want)
			}
		})
	}
}
