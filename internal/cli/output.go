package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"ofd_import/internal/receipt"
)

type jsonOutput struct {
	Count    int               `json:"count"`
	TotalSum uint64            `json:"total_sum"`
	Receipts []receipt.Receipt `json:"receipts"`
}

func writeReceipts(opts *Options, receipts []receipt.Receipt) error {
	if opts.JSON {
		return writeJSONReceipts(receipts)
	}
	return writeHumanReceipts(receipts)
}

func writeJSONReceipts(receipts []receipt.Receipt) error {
	payload := jsonOutput{
		Count:    len(receipts),
		TotalSum: sumReceipts(receipts),
		Receipts: receipts,
	}

	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(payload)
}

func writeHumanReceipts(receipts []receipt.Receipt) error {
	if len(receipts) == 0 {
		fmt.Fprintln(os.Stdout, "Чеки не найдены.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "Получено чеков: %d\n", len(receipts))
	for _, rec := range receipts {
		fmt.Fprintf(os.Stdout, "- %s  %s  %s  %s ₽  (позиций: %d)\n",
			rec.Created.Format("2006-01-02 15:04:05"),
			rec.FiscalSign,
			rec.Operation,
			formatMinorUnits(rec.TotalSum),
			len(rec.Items),
		)
	}
	fmt.Fprintf(os.Stdout, "Итого: %s ₽\n", formatMinorUnits(sumReceipts(receipts)))
	return nil
}

func sumReceipts(receipts []receipt.Receipt) uint64 {
	var total uint64
	for _, rec := range receipts {
		total += rec.TotalSum
	}
	return total
}

func formatMinorUnits(v uint64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}
