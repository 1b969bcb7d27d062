package prep

import (
	"reflect"
	"testing"
)

func TestRunFullAnalysisDeterministic(t *testing.T) {
	first := RunFullAnalysis("Amazon", "SDE", "React, DSA and AWS")
	second := RunFullAnalysis("Amazon", "SDE", "React, DSA and AWS")
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical bundles across calls")
	}
}

func TestRunFullAnalysisEmptyJDStillComplete(t *testing.T) {
	bundle := RunFullAnalysis("", "", "")

	if len(bundle.Checklist) != 4 {
		t.Fatalf("expected 4 checklist rounds, got %d", len(bundle.Checklist))
	}
	if len(bundle.Plan) != 5 {
		t.Fatalf("expected 5 plan buckets, got %d", len(bundle.Plan))
	}
	if len(bundle.Questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(bundle.Questions))
	}
	if len(bundle.RoundMapping) == 0 {
		t.Fatal("expected a round mapping")
	}
	if bundle.CompanyIntel != nil {
		t.Fatalf("expected no intel without a company, got %#v", bundle.CompanyIntel)
	}
	if bundle.ReadinessScore != 35 {
		t.Fatalf("expected bare base score 35, got %d", bundle.ReadinessScore)
	}
}

func TestRunFullAnalysisIntelPresentWithCompany(t *testing.T) {
	bundle := RunFullAnalysis("Google", "SWE", "banking platform")
	if bundle.CompanyIntel == nil {
		t.Fatal("expected intel with company name")
	}
	if !bundle.CompanyIntel.IsEnterprise {
		t.Fatal("expected Google marked enterprise")
	}
	if bundle.CompanyIntel.Industry != "Financial Services" {
		t.Fatalf("industry = %q", bundle.CompanyIntel.Industry)
	}
}
