package arrowtab

import (
	"context"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/bjaus/tabkit"
)

// WriteParquet writes t to w as a Snappy-compressed Parquet file with the
// Arrow schema embedded. w is closed when it implements io.Closer.
func WriteParquet(w io.Writer, t *tabkit.Table) error {
	if t.Width() == 0 {
		return fmt.Errorf("%w: parquet needs at least one column", tabkit.ErrShape)
	}
	mem := memory.NewGoAllocator()
	rec, err := ToRecord(mem, t)
	if err != nil {
		return err
	}
	defer rec.Release()

	props := parquet.NewWriterProperties(
		parquet.WithCompression(compress.Codecs.Snappy),
		parquet.WithAllocator(mem),
	)
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	fw, err := pqarrow.NewFileWriter(rec.Schema(), w, props, arrowProps)
	if err != nil {
		return fmt.Errorf("create parquet writer: %w", err)
	}
	if err := fw.Write(rec); err != nil {
		_ = fw.Close()
		return fmt.Errorf("write parquet: %w", err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

// ReadParquet reads a whole Parquet file into a table.
func ReadParquet(ctx context.Context, r parquet.ReaderAtSeeker) (*tabkit.Table, error) {
	mem := memory.NewGoAllocator()
	tbl, err := pqarrow.ReadTable(ctx, r, parquet.NewReaderProperties(mem), pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	defer tbl.Release()
	return FromArrowTable(tbl)
}
