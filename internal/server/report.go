package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"netdash/internal/artifact"
)

// reportPDF generates the downloadable summary report: node and cluster
// counts plus the per-cluster path statistics table for each resolution.
func reportPDF(bundle artifact.Bundle, log *zap.Logger) gin.HandlerFunc {
	sections := []struct {
		name string
		res  artifact.ClusterResult
	}{
		{name: "Community View (8 Clusters)", res: bundle.Community},
		{name: "Granular View (16 Clusters)", res: bundle.Granular},
	}

	return func(c *gin.Context) {
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, "Network Analysis Report")
		pdf.Ln(14)

		for _, sec := range sections {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.Cell(0, 8, sec.name)
			pdf.Ln(8)

			pdf.SetFont("Helvetica", "", 10)
			pdf.Cell(0, 6, fmt.Sprintf("Nodes: %d    Clusters: %d    Users mapped: %d",
				sec.res.Nodes(), len(sec.res.ClusterNames), len(sec.res.IDToName)))
			pdf.Ln(8)

			if len(sec.res.ClusterNames) == 0 {
				pdf.SetFont("Helvetica", "I", 10)
				pdf.Cell(0, 6, "No cluster data loaded.")
				pdf.Ln(10)
				continue
			}

			pdf.SetFont("Helvetica", "B", 9)
			pdf.CellFormat(60, 6, "Cluster", "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 6, "Size", "1", 0, "R", false, 0, "")
			pdf.CellFormat(25, 6, "Min path", "1", 0, "R", false, 0, "")
			pdf.CellFormat(25, 6, "Avg path", "1", 0, "R", false, 0, "")
			pdf.CellFormat(25, 6, "Max path", "1", 1, "R", false, 0, "")

			pdf.SetFont("Helvetica", "", 9)
			for id, name := range sec.res.ClusterNames {
				pdf.CellFormat(60, 6, name, "1", 0, "L", false, 0, "")
				pdf.CellFormat(25, 6, statCell(sec.res.ClusterSize, id), "1", 0, "R", false, 0, "")
				pdf.CellFormat(25, 6, statCell(sec.res.ClusterMin, id), "1", 0, "R", false, 0, "")
				pdf.CellFormat(25, 6, statCell(sec.res.ClusterAvg, id), "1", 0, "R", false, 0, "")
				pdf.CellFormat(25, 6, statCell(sec.res.ClusterMax, id), "1", 1, "R", false, 0, "")
			}
			pdf.Ln(6)
		}

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			log.Error("Failed to generate PDF report", zap.Error(err))
			c.String(http.StatusInternalServerError, "report error")
			return
		}

		c.Header("Content-Disposition", `attachment; filename="network_report.pdf"`)
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}

func statCell(values []float64, id int) string {
	if id < 0 || id >= len(values) {
		return "-"
	}
	return fmt.Sprintf("%.2f", values[id])
}
