package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bookingcom/nanobuckets/pkg/buckets"
	"github.com/bookingcom/nanobuckets/pkg/cfg"
	"github.com/bookingcom/nanobuckets/pkg/format"
	"github.com/bookingcom/nanobuckets/pkg/hardware"
	"github.com/pkg/errors"
)

type hardwareRow struct {
	hardware.Option
	TxPerWatt float64 `json:"txPerWatt"`
	CostPerTx string  `json:"costPerTx"`
}

func writeBuckets(w io.Writer, bs []buckets.Bucket, output string) error {
	if output == cfg.OutputJSON {
		return writeJSON(w, bs)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tMIN\tMAX\tSELECTED")
	for _, b := range bs {
		sel := ""
		if b.Toggled {
			sel = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", b.Index, format.Nano(b.MinNano), format.Nano(b.MaxNano), sel)
	}

	return tw.Flush()
}

func hardwareRows(opts []hardware.Option) ([]hardwareRow, error) {
	rows := make([]hardwareRow, 0, len(opts))
	for _, o := range opts {
		c, err := o.CostPerTx()
		if err != nil {
			return nil, err
		}
		rows = append(rows, hardwareRow{Option: o, TxPerWatt: o.TxPerWatt(), CostPerTx: c.String()})
	}
	return rows, nil
}

func writeHardware(w io.Writer, opts []hardware.Option, output string) error {
	rows, err := hardwareRows(opts)
	if err != nil {
		return err
	}

	if output == cfg.OutputJSON {
		return writeJSON(w, rows)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCOST\tPOWER\tTX/S\tTX/W\tCOST/TX")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name, r.Cost, format.SI(r.Power, "W"), format.Number(r.TxPerSec),
			format.Number(r.TxPerWatt), r.CostPerTx)
	}

	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "failed to encode output")
}
