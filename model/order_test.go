package model

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusPending, StatusEmProducao},
		{StatusPending, StatusACaminho},
		{StatusPending, StatusEntregue},
		{StatusPending, StatusCancelado},
		{StatusPending, StatusFinalizado},
		{StatusEmProducao, StatusACaminho},
		{StatusEmProducao, StatusCancelado},
		{StatusACaminho, StatusEntregue},
		{StatusEntregue, StatusFinalizado},
		{StatusEntregue, StatusCancelado},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("esperava %s -> %s permitido", tc.from, tc.to)
		}
	}

	forbidden := []struct{ from, to string }{
		{StatusEmProducao, StatusPending},
		{StatusACaminho, StatusEmProducao},
		{StatusEntregue, StatusACaminho},
		{StatusCancelado, StatusPending},
		{StatusCancelado, StatusFinalizado},
		{StatusFinalizado, StatusFinalizado},
		{StatusFinalizado, StatusCancelado},
		{StatusPending, StatusPending},
	}
	for _, tc := range forbidden {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("esperava %s -> %s proibido", tc.from, tc.to)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range KanbanStatuses {
		if !IsValidStatus(status) {
			t.Errorf("status %q deveria ser válido", status)
		}
	}
	for _, status := range []string{"", "draft", "PENDING", "entregando"} {
		if IsValidStatus(status) {
			t.Errorf("status %q não deveria ser válido", status)
		}
	}
}

func TestKanbanStatusesOrder(t *testing.T) {
	want := []string{
		StatusPending,
		StatusEmProducao,
		StatusACaminho,
		StatusEntregue,
		StatusCancelado,
		StatusFinalizado,
	}
	if len(KanbanStatuses) != len(want) {
		t.Fatalf("quadro deve ter %d colunas, tem %d", len(want), len(KanbanStatuses))
	}
	for i, status := range want {
		if KanbanStatuses[i] != status {
			t.Errorf("coluna %d: esperava %s, veio %s", i, status, KanbanStatuses[i])
		}
	}
}
