package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/query"
	"github.com/ozank/collegium/internal/pkg/results"
)

// defaultPageSize applies when paging is requested without a size.
const defaultPageSize = 10

// parseID reads the :id path parameter, writing a 400 envelope when it is
// not a number.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(results.CodeFormatInvalid, "id must be a positive number", results.LevelImportant))
		return 0, false
	}
	return id, true
}

// queryOptions collects the filter, include and ordering parameters. The
// filter rides the "query" parameter in the mini-language; includes come
// comma-separated or repeated.
func queryOptions(c *gin.Context) query.Options {
	opts := query.Options{
		Filter:  c.Query("query"),
		OrderBy: c.Query("orderBy"),
		Desc:    strings.EqualFold(c.Query("sort"), "desc"),
	}
	for _, raw := range c.QueryArray("include") {
		for _, include := range strings.Split(raw, ",") {
			if include = strings.TrimSpace(include); include != "" {
				opts.Includes = append(opts.Includes, include)
			}
		}
	}
	return opts
}

// paging reads page/pageSize, reporting whether paging was requested at all.
func paging(c *gin.Context) (page, size int, requested bool) {
	pageStr, sizeStr := c.Query("page"), c.Query("pageSize")
	if pageStr == "" && sizeStr == "" {
		return 0, 0, false
	}
	page, _ = strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	size, _ = strconv.Atoi(sizeStr)
	if size < 1 {
		size = defaultPageSize
	}
	return page, size, true
}
