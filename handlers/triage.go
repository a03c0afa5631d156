package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lifeline/classifier"
	"go-lifeline/types"
)

type classifyBody struct {
	Title          string                 `json:"title" binding:"required"`
	Description    string                 `json:"description"`
	Category       string                 `json:"category" binding:"required"`
	Location       string                 `json:"location"`
	Timestamp      string                 `json:"timestamp"`
	HistoricalData map[string]interface{} `json:"historical_data"`
}

// ClassifyRequest triages one service request. The response is always 200
// with a classification: an unreachable classifier service degrades to the
// keyword engine, never to an error.
func ClassifyRequest(c *gin.Context, gw *classifier.Gateway) {
	var body classifyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := gw.ClassifyPriority(c.Request.Context(), classifier.ClassifyRequest{
		Request: types.ServiceRequest{
			Title:       body.Title,
			Description: body.Description,
			Category:    types.Category(body.Category),
			Location:    body.Location,
			Timestamp:   body.Timestamp,
		},
		HistoricalData: body.HistoricalData,
	})

	c.JSON(http.StatusOK, result)
}

type predictBody struct {
	DisasterType       string `json:"disaster_type" binding:"required"`
	AffectedPopulation int    `json:"affected_population"`
	Location           string `json:"location"`
	HistoricalPatterns bool   `json:"historical_patterns"`
}

// PredictResources estimates relief quantities for a disaster scenario.
func PredictResources(c *gin.Context, gw *classifier.Gateway) {
	var body predictBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.AffectedPopulation < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "affected_population must be non-negative"})
		return
	}

	pred := gw.PredictResources(c.Request.Context(), classifier.PredictRequest{
		DisasterType:       types.DisasterType(body.DisasterType),
		AffectedPopulation: body.AffectedPopulation,
		Location:           body.Location,
		HistoricalPatterns: body.HistoricalPatterns,
	})

	c.JSON(http.StatusOK, pred)
}

type chatBody struct {
	Message  string `json:"message" binding:"required"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	Language string `json:"language"`
}

// Chat answers one assistant query.
func Chat(c *gin.Context, gw *classifier.Gateway) {
	var body chatBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := gw.Chat(c.Request.Context(), classifier.ChatRequest{
		Message:  body.Message,
		UserID:   body.UserID,
		Role:     body.Role,
		Language: body.Language,
	})

	c.JSON(http.StatusOK, reply)
}
