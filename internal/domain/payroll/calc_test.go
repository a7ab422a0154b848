package payroll

import (
	"math"
	"testing"
)

func TestComputePayroll(t *testing.T) {
	inputs := []InputLine{
		{Type: "earning", Amount: 200},
		{Type: "earning", Amount: 50},
		{Type: "deduction", Amount: 100},
	}

	gross, deductions, net := ComputePayroll(1000, inputs)
	if gross != 1250 {
		t.Fatalf("expected gross 1250, got %v", gross)
	}
	if deductions != 100 {
		t.Fatalf("expected deductions 100, got %v", deductions)
	}
	if net != 1150 {
		t.Fatalf("expected net 1150, got %v", net)
	}
}

func TestComputePayrollIgnoresUnknownTypes(t *testing.T) {
	inputs := []InputLine{
		{Type: "bonus", Amount: 100},
		{Type: "deduction", Amount: 25},
	}
	gross, deductions, net := ComputePayroll(500, inputs)
	if gross != 500 {
		t.Fatalf("expected gross 500, got %v", gross)
	}
	if deductions != 25 {
		t.Fatalf("expected deductions 25, got %v", deductions)
	}
	if net != 475 {
		t.Fatalf("expected net 475, got %v", net)
	}
}

func TestComputeTotalsStaysFinite(t *testing.T) {
	deductions, income, net := ComputeTotals(1e308, 1e308, 0, 5_000_000)
	for name, v := range map[string]float64{"deductions": deductions, "income": income, "net": net} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("expected finite %s, got %v", name, v)
		}
	}
	if deductions != math.MaxFloat64 {
		t.Fatalf("expected deductions clamped to MaxFloat64, got %v", deductions)
	}
	if net >= 0 {
		t.Fatalf("expected negative net, got %v", net)
	}
}

func TestComputeTotals(t *testing.T) {
	deductions, income, net := ComputeTotals(1_000_000, 50_000, 200_000, 5_000_000)
	if deductions != 1_250_000 {
		t.Fatalf("expected deductions 1250000, got %v", deductions)
	}
	if income != 5_000_000 {
		t.Fatalf("expected income 5000000, got %v", income)
	}
	if net != 3_750_000 {
		t.Fatalf("expected net 3750000, got %v", net)
	}
}
