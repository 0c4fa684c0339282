package repository

import (
	"reflect"
	"testing"
)

func TestBuildUpdateSet_Deterministic(t *testing.T) {
	fields := map[string]any{
		"nombre":  "Luna",
		"edad":    int64(3),
		"peso":    4.2,
		"especie": "gato",
	}

	set, args := buildUpdateSet(fields)

	if set != "edad=$1, especie=$2, nombre=$3, peso=$4" {
		t.Fatalf("unexpected set clause: %s", set)
	}
	want := []any{int64(3), "gato", "Luna", 4.2}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildUpdateSet_SingleField(t *testing.T) {
	set, args := buildUpdateSet(map[string]any{"estado": "completada"})

	if set != "estado=$1" {
		t.Fatalf("unexpected set clause: %s", set)
	}
	if len(args) != 1 || args[0] != "completada" {
		t.Fatalf("unexpected args: %v", args)
	}
}
