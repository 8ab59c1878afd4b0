package http

import (
	"trade-custody/internal/item"
	"trade-custody/internal/model"
	"trade-custody/pkg/response"
)

// --- Request DTOs ---

type updateStatusReq struct {
	ItemIDs           []int64 `json:"itemIds"`
	Status            string  `json:"status"`
	DeliveredByUserID int64   `json:"deliveredByUserId"`
	UserRole          string  `json:"userRole"`
}

func (r updateStatusReq) toInput() item.UpdateStatusInput {
	return item.UpdateStatusInput{
		ItemIDs:      r.ItemIDs,
		Action:       item.Action(r.Status),
		ActingUserID: r.DeliveredByUserID,
		ActingRole:   model.Role(r.UserRole),
	}
}

// ---

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() item.ListInput {
	return item.ListInput{
		Status: item.Status(r.Status),
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type updatedGameResp struct {
	ID        int64  `json:"id"`
	NewStatus string `json:"newStatus"`
	Title     string `json:"title"`
}

type updateStatusResp struct {
	Success      bool              `json:"success"`
	UpdatedGames []updatedGameResp `json:"updatedGames"`
}

func (h *handler) newUpdateStatusResp(out item.UpdateStatusOutput) updateStatusResp {
	games := make([]updatedGameResp, len(out.UpdatedItems))
	for i, u := range out.UpdatedItems {
		games[i] = updatedGameResp{
			ID:        u.ID,
			NewStatus: string(u.NewStatus),
			Title:     u.Title,
		}
	}
	return updateStatusResp{Success: true, UpdatedGames: games}
}

type itemResp struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Status    string            `json:"status"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:        it.ID,
		Title:     it.Title,
		Status:    string(it.Status),
		UpdatedAt: response.DateTime(it.UpdatedAt),
	}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out item.DetailOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items  []itemResp `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out item.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{
		Items:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type auditResp struct {
	ID             string            `json:"id"`
	BatchID        string            `json:"batch_id"`
	ActorID        int64             `json:"actor_id"`
	ActorRole      string            `json:"actor_role"`
	Action         string            `json:"action"`
	PreviousStatus string            `json:"previous_status"`
	NewStatus      string            `json:"new_status"`
	RecordedAt     response.DateTime `json:"recorded_at"`
}

type auditsResp struct {
	Entries []auditResp `json:"entries"`
}

func (h *handler) newAuditsResp(out item.AuditsOutput) auditsResp {
	entries := make([]auditResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = auditResp{
			ID:             e.ID.String(),
			BatchID:        e.BatchID.String(),
			ActorID:        e.ActorID,
			ActorRole:      string(e.ActorRole),
			Action:         string(e.Action),
			PreviousStatus: string(e.PreviousStatus),
			NewStatus:      string(e.NewStatus),
			RecordedAt:     response.DateTime(e.RecordedAt),
		}
	}
	return auditsResp{Entries: entries}
}
