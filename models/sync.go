// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// EventType is the kind of transaction mutation mirrored to the spreadsheet.
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// ParseEventType parses s case-insensitively. ok is false for unknown values.
func ParseEventType(s string) (EventType, bool) {
	e := EventType(strings.ToUpper(strings.TrimSpace(s)))
	return e, e.Valid()
}

// Valid reports whether e is one of INSERT, UPDATE or DELETE.
func (e EventType) Valid() bool {
	return e == EventInsert || e == EventUpdate || e == EventDelete
}

// SheetsTable is the table name carried in every sync payload.
const SheetsTable = "transactions"

// TransactionRecord is the transaction shape sent to the spreadsheet
// endpoint. For DELETE events only ID is semantically required.
type TransactionRecord struct {
	ID              string          `json:"id"`
	TransactionDate string          `json:"transaction_date,omitempty"`
	Type            TransactionType `json:"type,omitempty"`
	Amount          float64         `json:"amount"`
	Description     string          `json:"description,omitempty"`
	IsPenyisihan    bool            `json:"is_penyisihan"`
	UserID          string          `json:"user_id,omitempty"`
	UserName        string          `json:"user_name,omitempty"`
	CreatedAt       string          `json:"created_at,omitempty"`
}

// SheetSyncPayload is the JSON body POSTed to the spreadsheet webhook.
// Exactly one of Record and OldRecord is set: OldRecord for DELETE events,
// Record for everything else.
type SheetSyncPayload struct {
	Type      EventType          `json:"type"`
	Table     string             `json:"table"`
	Record    *TransactionRecord `json:"record,omitempty"`
	OldRecord *TransactionRecord `json:"old_record,omitempty"`
}

// NewSheetSyncPayload builds the payload for eventType and record.
func NewSheetSyncPayload(eventType EventType, record TransactionRecord) SheetSyncPayload {
	payload := SheetSyncPayload{Type: eventType, Table: SheetsTable}
	rec := record
	if eventType == EventDelete {
		payload.OldRecord = &rec
	} else {
		payload.Record = &rec
	}
	return payload
}

// Subject returns the record carried by the payload, preferring Record.
func (p SheetSyncPayload) Subject() *TransactionRecord {
	if p.Record != nil {
		return p.Record
	}
	return p.OldRecord
}
