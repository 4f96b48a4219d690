// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the arXiv gateway as an HTTP endpoint, so other
// paper-scout processes can delegate repository calls to one instance.
package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/paper-scout/internal/arxiv"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// findPapersRequest is the body of a find-papers call.
type findPapersRequest struct {
	SearchTerms []string `json:"search_terms" binding:"required"`
	MinDate     string   `json:"min_date"`
	MaxResults  int      `json:"max_results"`
}

// New builds the HTTP handler around gw. Repository failures are reported
// as a single-field {"error": ...} payload rather than raised; the
// underlying cause message is preserved in it. Log lines go to w.
func New(gw arxiv.Gateway, w io.Writer) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/find-papers", func(c *gin.Context) {
		var req findPapersRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
			return
		}

		fmt.Fprintf(w, "find-papers terms=%v min_date=%q max_results=%d\n",
			req.SearchTerms, req.MinDate, req.MaxResults)

		papers, err := gw.FindPapers(c.Request.Context(), req.SearchTerms, req.MinDate, req.MaxResults)
		if err != nil {
			fmt.Fprintf(w, "find-papers failed: %v\n", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		if papers == nil {
			papers = []types.Paper{}
		}
		fmt.Fprintf(w, "find-papers returning %d papers\n", len(papers))
		c.JSON(http.StatusOK, papers)
	})

	return r
}
