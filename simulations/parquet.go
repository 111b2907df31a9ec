package simulations

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// writeSummaryParquet writes the run-level summary as a parquet file for
// columnar consumers.
func writeSummaryParquet(path string, summaries []GameSummary) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(GameSummary), 1)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, summary := range summaries {
		if err := parquetWriter.Write(summary); err != nil {
			return fmt.Errorf("failed to write parquet row: %w", err)
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return fileWriter.Close()
}
