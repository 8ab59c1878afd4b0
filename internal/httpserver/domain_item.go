package httpserver

import (
	"context"

	itemHTTP "trade-custody/internal/item/delivery/http"
	itemUC "trade-custody/internal/item/usecase"
	"trade-custody/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(repo, ..., srv.l)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := itemUC.New(srv.itemRepo, srv.auditSink, srv.l)

	// 2. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/items
	itemHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
