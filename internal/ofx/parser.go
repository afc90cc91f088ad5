// Package ofx imports OFX/QFX bank and credit card statements as Snacker
// transactions.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Veraticus/snacker/internal/model"
	"github.com/aclindsa/ofxgo"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	// Opening tags missing their closing bracket at end of line.
	tagFixRegex = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Result is the outcome of parsing one statement file.
type Result struct {
	Transactions []model.Transaction
	Accounts     []string
	Duplicates   int
}

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// SEVERITY must be INFO, WARN or ERROR
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX/QFX file and returns its transactions. Credits
// become income in the "Other" income category, debits become expenses in
// the "Other" expense category. Transactions repeating an earlier FITID are
// skipped.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	result, err := p.Parse(ctx, reader)
	if err != nil {
		return nil, err
	}
	return result.Transactions, nil
}

// Parse is ParseFile with account and duplicate details.
func (p *Parser) Parse(ctx context.Context, reader io.Reader) (*Result, error) {
	resp, err := p.parseResponse(reader)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	seen := make(map[string]bool)
	add := func(accountID string, list *ofxgo.TransactionList) error {
		if accountID != "" {
			result.Accounts = append(result.Accounts, accountID)
		}
		if list == nil {
			return nil
		}
		for _, ofxTx := range list.Transactions {
			if err := ctx.Err(); err != nil {
				return err
			}
			fitID := string(ofxTx.FiTID)
			if fitID != "" && seen[fitID] {
				result.Duplicates++
				continue
			}
			seen[fitID] = true

			tx, ok := p.convertTransaction(ofxTx)
			if !ok {
				slog.Warn("Skipping zero-amount OFX transaction", "fitid", fitID)
				continue
			}
			result.Transactions = append(result.Transactions, tx)
		}
		return nil
	}

	var bankStmts, ccStmts int
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if err := add(string(stmt.BankAcctFrom.AcctID), stmt.BankTranList); err != nil {
				return nil, err
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if err := add(string(stmt.CCAcctFrom.AcctID), stmt.BankTranList); err != nil {
				return nil, err
			}
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(result.Transactions),
		"duplicates", result.Duplicates,
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return result, nil
}

func (p *Parser) parseResponse(reader io.Reader) (*ofxgo.Response, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}
	return resp, nil
}

// convertTransaction maps an OFX transaction onto the Snacker model. OFX
// amounts are signed; ours are magnitudes with an explicit type.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction) (model.Transaction, bool) {
	amount, _ := ofxTx.TrnAmt.Float64()
	if amount == 0 {
		return model.Transaction{}, false
	}

	tx := model.Transaction{
		ID:         string(ofxTx.FiTID),
		Type:       model.TypeExpense,
		CategoryID: model.CategoryOtherExpense,
		Amount:     amount,
		Date:       model.DateOf(ofxTx.DtPosted.Time),
		Notes:      p.extractMerchantName(ofxTx),
	}
	if amount > 0 {
		tx.Type = model.TypeIncome
		tx.CategoryID = model.CategoryOtherIncome
	} else {
		tx.Amount = -amount
	}
	return tx, true
}

// extractMerchantName tries to get a clean merchant name from OFX data.
func (p *Parser) extractMerchantName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if tx.Memo != "" && isGenericDescription(name) {
		name = strings.TrimSpace(string(tx.Memo))
	}

	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Leading "MM/DD "
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

// isGenericDescription checks if a transaction name is too generic.
func isGenericDescription(name string) bool {
	switch strings.ToUpper(name) {
	case "", "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		return true
	}
	return false
}

// GetAccounts extracts unique account IDs from the OFX file.
func (p *Parser) GetAccounts(ctx context.Context, reader io.Reader) ([]string, error) {
	resp, err := p.parseResponse(reader)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var accounts []string
	addAccount := func(id ofxgo.String) {
		if id != "" && !seen[string(id)] {
			seen[string(id)] = true
			accounts = append(accounts, string(id))
		}
	}

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			addAccount(stmt.BankAcctFrom.AcctID)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			addAccount(stmt.CCAcctFrom.AcctID)
		}
	}

	return accounts, nil
}
