package kassa

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// The ledger state is persisted as four independent records: the sales and
// expense collections and the shift archive in JSONL (one record per line),
// and the shift-start timestamp in a small JSON document.

func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write record: %w", err)
	}
	return nil
}

// EncodeSales writes the sales collection in JSONL format.
func EncodeSales(w io.Writer, sales []SaleRecord) error {
	for _, s := range sales {
		if err := encodeLine(w, s); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSales reads a JSONL stream of sale records.
func DecodeSales(r io.Reader) ([]SaleRecord, error) {
	var sales []SaleRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var s SaleRecord
		if err := json.Unmarshal(line, &s); err != nil {
			return nil, fmt.Errorf("could not decode sale line %q: %w", string(line), err)
		}
		sales = append(sales, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading sales: %w", err)
	}
	return sales, nil
}

// EncodeExpenses writes the expense collection in JSONL format.
func EncodeExpenses(w io.Writer, expenses []ExpenseRecord) error {
	for _, e := range expenses {
		if err := encodeLine(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeExpenses reads a JSONL stream of expense records.
func DecodeExpenses(r io.Reader) ([]ExpenseRecord, error) {
	var expenses []ExpenseRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e ExpenseRecord
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("could not decode expense line %q: %w", string(line), err)
		}
		expenses = append(expenses, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading expenses: %w", err)
	}
	return expenses, nil
}

// EncodeReports writes the shift archive in JSONL format, most recent first.
func EncodeReports(w io.Writer, reports []ShiftReport) error {
	for _, r := range reports {
		if err := encodeLine(w, r); err != nil {
			return err
		}
	}
	return nil
}

// DecodeReports reads a JSONL stream of shift reports.
func DecodeReports(r io.Reader) ([]ShiftReport, error) {
	var reports []ShiftReport
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var report ShiftReport
		if err := json.Unmarshal(line, &report); err != nil {
			return nil, fmt.Errorf("could not decode shift line %q: %w", string(line), err)
		}
		reports = append(reports, report)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading shifts: %w", err)
	}
	return reports, nil
}

type shiftState struct {
	ShiftStart Millis `json:"shiftStart"`
}

// EncodeState writes the current shift-start timestamp.
func EncodeState(w io.Writer, shiftStart Millis) error {
	return encodeLine(w, shiftState{ShiftStart: shiftStart})
}

// DecodeState reads the shift-start timestamp.
func DecodeState(r io.Reader) (Millis, error) {
	var state shiftState
	if err := json.NewDecoder(r).Decode(&state); err != nil {
		return 0, fmt.Errorf("could not decode shift state: %w", err)
	}
	return state.ShiftStart, nil
}
