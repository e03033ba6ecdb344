package transaction

import (
	"bytes"
	"encoding/csv"

	log "github.com/sirupsen/logrus"
)

// Renderer converts a transaction list into an export format.
type Renderer interface {
	RenderTransactions(txs []Transaction) (string, error)
}

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

func (t *CsvRendererImpl) RenderTransactions(txs []Transaction) (string, error) {
	data := make([][]string, 0, len(txs)+1)
	data = append(data, []string{"Date", "Type", "Category", "Amount", "Description"})
	for _, tx := range txs {
		data = append(data, []string{
			tx.Date.Format(DateLayout),
			string(tx.Type),
			tx.Category,
			tx.Amount.StringFixed(2),
			tx.Description,
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
