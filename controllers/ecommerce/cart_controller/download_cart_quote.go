package cart_controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/models"
	"github.com/mose868/fashionhouse-sub000/services"
	"go.uber.org/zap"
)

// DownloadCartQuote godoc
// @Summary Download cart quote PDF
// @Description Render the current cart as a PDF quote
// @Tags Cart
// @Produce octet-stream
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Cart cannot be empty"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /cart/quote [get]
func (h *CartController) DownloadCartQuote(c *gin.Context) {
	now := h.now()
	pdfBuffer, err := services.GenerateCartQuotePDF(storeFrom(c).State(), now)
	if errors.Is(err, services.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart cannot be empty"))
		return
	}
	if err != nil {
		h.logger.Error("❌ failed to render cart quote", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	filename := fmt.Sprintf("cart-quote-%s.pdf", now.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, filename, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
