package repository

import "testing"

func TestSearchClause(t *testing.T) {
	clause, pattern := searchClause([]string{"nombre", "email"}, "ana", 1)

	if clause != "(nombre LIKE $1 OR email LIKE $1)" {
		t.Fatalf("unexpected clause: %s", clause)
	}
	if pattern != "%ana%" {
		t.Fatalf("unexpected pattern: %s", pattern)
	}
}

func TestSearchClause_EmptyTermMatchesAll(t *testing.T) {
	_, pattern := searchClause(serviceSearchColumns, "", 1)
	if pattern != "%%" {
		t.Fatalf("expected %%%% pattern, got %s", pattern)
	}
}

func TestSearchClause_TrimsWhitespace(t *testing.T) {
	_, pattern := searchClause(userSearchColumns, "  ana  ", 2)
	if pattern != "%ana%" {
		t.Fatalf("expected trimmed pattern, got %s", pattern)
	}
}

func TestSearchClause_JoinedColumnsAndIndex(t *testing.T) {
	clause, _ := searchClause([]string{"u.nombre", "p.nombre"}, "luna", 3)
	if clause != "(u.nombre LIKE $3 OR p.nombre LIKE $3)" {
		t.Fatalf("unexpected clause: %s", clause)
	}
}
