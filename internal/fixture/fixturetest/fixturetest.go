// Package fixturetest writes small fixture directories for tests.
package fixturetest

import (
	"os"
	"path/filepath"
	"testing"
)

// Default fixture contents, small enough to reason about in assertions.
var Defaults = map[string]string{
	"checklist.json": `[
  {"task": "Configurar pixel", "completed": false},
  {"task": "Revisar checkout", "completed": true},
  {"task": "Definir orçamento", "completed": false}
]`,
	"metrics.json": `[
  {"label": "Faturamento", "value": 1250000, "type": "currency", "change": 12.5},
  {"label": "Vendas", "value": 3450, "type": "number", "change": -2}
]`,
	"traffic.json":    `{"labels": ["Meta Ads", "Google Ads"], "values": [75, 25]}`,
	"categories.json": `{"labels": ["Principal", "Upsells"], "values": [800, 200]}`,
	"campaigns.json": `{"labels": ["Jan", "Fev", "Mar"], "datasets": [
  {"label": "Investimento", "data": [10, 20, 30]},
  {"label": "Retorno", "data": [30, 50, 90]}
]}`,
	"execution-plan.json": `[
  {"fase": "Fase 1", "prazo": "Semana 1", "status": "em-andamento", "tarefas": [
    {"id": "F1-T1", "titulo": "Auditar pixel", "responsavel": "Ana", "prazo": "2 dias", "metrica": "100%", "subtarefas": ["Validar eventos", "Testar compra"]}
  ]},
  {"fase": "Fase 2", "prazo": "Semana 2", "status": "pendente", "tarefas": [
    {"id": "F2-T1", "titulo": "Escalar", "responsavel": "Bia", "prazo": "1 semana", "metrica": "ROAS 3", "subtarefas": []},
    {"id": "F2-T2", "titulo": "Criativos", "responsavel": "Caio", "prazo": "3 dias", "metrica": "CTR 2%", "subtarefas": ["Gravar vídeos"]}
  ]},
  {"fase": "Fase 3", "prazo": "Semana 3", "status": "pendente", "tarefas": []}
]`,
	"monitoring.json": `{
  "kpis_mensais": {"metricas": [
    {"categoria": "Aquisição", "indicadores": [
      {"nome": "CPA", "meta": "R$ 90", "atual": "R$ 104", "status": "alerta"},
      {"nome": "CTR", "meta": "1,5%", "atual": "2,1%", "status": "excelente"}
    ]}
  ]},
  "acoes_prioritarias": {"acoes": [
    {"metrica": "CPA", "status": "alerta", "gap": "R$ 14 acima", "acoes": ["Pausar criativos"]},
    {"metrica": "Checkout", "status": "critico", "gap": "13 pontos", "acoes": ["Simplificar formulário"]}
  ]},
  "timeline_metas": {"periodos": [
    {"mes": "Mês 1", "objetivo": "Estabilizar", "metas": ["CPA < 95"], "faturamento_projetado": "R$ 1,3M"}
  ]}
}`,
}

// WriteDir writes Defaults into a temp dir, applying overrides. An empty
// override value removes that fixture from the directory.
func WriteDir(t testing.TB, overrides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files := make(map[string]string, len(Defaults))
	for k, v := range Defaults {
		files[k] = v
	}
	for k, v := range overrides {
		files[k] = v
	}
	for name, body := range files {
		if body == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
	return dir
}

// Rewrite replaces one fixture in an existing directory.
func Rewrite(t testing.TB, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("rewrite fixture %s: %v", name, err)
	}
}
