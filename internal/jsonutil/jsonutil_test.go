package jsonutil

import (
	"strings"
	"testing"
)

func TestRoundTripWithContext(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	data, err := MarshalWithContext(payload{Name: "acme", Count: 12}, "encode lead")
	if err != nil {
		t.Fatalf("MarshalWithContext: %v", err)
	}
	var got payload
	if err := UnmarshalWithContext(data, &got, "decode lead"); err != nil {
		t.Fatalf("UnmarshalWithContext: %v", err)
	}
	if got.Name != "acme" || got.Count != 12 {
		t.Errorf("round trip = %+v", got)
	}
}

func TestUnmarshalErrorCarriesContext(t *testing.T) {
	var v struct{}
	err := UnmarshalWithContext([]byte("{nope"), &v, "decode lead")
	if err == nil || !strings.Contains(err.Error(), "decode lead") {
		t.Errorf("err = %v, want context prefix", err)
	}
}
