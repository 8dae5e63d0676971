package entity

import "time"

// LogCategory is the closed discriminant of a log entry.
type LogCategory string

const (
	LogVenda        LogCategory = "Venda"
	LogCompra       LogCategory = "Compra"
	LogSaque        LogCategory = "Saque"
	LogDeposito     LogCategory = "Deposito"
	LogInvestimento LogCategory = "Investimento"
	LogManutencao   LogCategory = "Manutencao"
	LogConversao    LogCategory = "Conversao"
	LogSistema      LogCategory = "Sistema"
	LogBase         LogCategory = "Base"
	LogDominio      LogCategory = "Dominio"
	LogEstoque      LogCategory = "Estoque"
	LogNPC          LogCategory = "NPC"
	LogQuest        LogCategory = "Quest"
	LogCalendario   LogCategory = "Calendario"
	LogMembro       LogCategory = "Membro"
)

const (
	// SystemActorID marks guild-initiated log entries.
	SystemActorID = "system"
	// SystemActorName is the display name of SystemActorID.
	SystemActorName = "Sistema"
	// UnknownActorName is recorded when the actor id no longer resolves.
	UnknownActorName = "Desconhecido"
)

// LogEntry is an immutable ledger record. Value is signed and expressed in TS.
type LogEntry struct {
	ID         string      `json:"id"`
	Date       time.Time   `json:"date"`
	Category   LogCategory `json:"category"`
	Details    string      `json:"details"`
	Value      float64     `json:"value"`
	MemberID   string      `json:"memberId"`
	MemberName string      `json:"memberName"`
}
