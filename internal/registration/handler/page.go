package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/festy23/innov8x/internal/registration/model"
	"github.com/festy23/innov8x/internal/web"
)

// Form actions posted by the page buttons.
const (
	ActionAddMember    = "add_member"
	ActionRemoveMember = "remove_member:"
	ActionSubmit       = "submit"
)

var errUnknownAction = errors.New("unknown form action")

// IsSubmitAction reports whether a posted action submits the form. A post
// without an action, such as pressing enter in a field, submits too.
func IsSubmitAction(action string) bool {
	return action == ActionSubmit || action == ""
}

// IsSubmitRequest reports whether the page post submits the form rather
// than editing it.
func IsSubmitRequest(c *gin.Context) bool {
	return IsSubmitAction(c.PostForm("action"))
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type memberRow struct {
	Number    int
	Member    model.TeamMember
	Roles     []option
	Removable bool
}

type pageData struct {
	Title         string
	SubmissionKey string
	Form          model.TeamForm
	TeamSizes     []option
	Members       []memberRow
	Result        *model.SubmissionResult
	Error         string
}

func (h *Handler) newPage(key string, form model.TeamForm) *pageData {
	page := &pageData{
		Title:         "Register | " + h.eventName,
		SubmissionKey: key,
		Form:          form,
	}

	for _, size := range model.TeamSizes() {
		page.TeamSizes = append(page.TeamSizes, option{
			Value:    strconv.Itoa(int(size)),
			Label:    size.Label(),
			Selected: size == form.TeamSize,
		})
	}

	for i, m := range form.Members {
		row := memberRow{Number: i + 1, Member: m, Removable: model.CanRemove(i)}
		for _, role := range model.Roles() {
			row.Roles = append(row.Roles, option{
				Value:    string(role),
				Label:    role.Label(),
				Selected: role == m.Role,
			})
		}
		page.Members = append(page.Members, row)
	}

	return page
}

// Page handles GET /register request.
func (h *Handler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, web.RegisterTemplate, h.newPage(uuid.NewString(), model.NewForm()))
}

// PostPage handles POST /register request. It rebuilds the form from the
// posted values, applies the requested action and renders the result.
func (h *Handler) PostPage(c *gin.Context) {
	key := c.PostForm("submission_key")
	form, parseErr := parseForm(c)

	action := c.PostForm("action")
	switch {
	case action == ActionAddMember:
		form = model.AddMember(form)
		h.render(c, http.StatusOK, key, form, nil, parseErr)

	case strings.HasPrefix(action, ActionRemoveMember):
		id := strings.TrimPrefix(action, ActionRemoveMember)
		if len(form.Members) > 0 && form.Members[0].ID == id {
			h.render(c, http.StatusOK, key, form, nil, parseErr)
			return
		}
		next, err := model.RemoveMemberByID(form, id)
		if err != nil {
			h.render(c, http.StatusOK, key, form, nil, errors.Join(parseErr, err))
			return
		}
		h.render(c, http.StatusOK, key, next, nil, parseErr)

	case IsSubmitAction(action):
		if parseErr != nil {
			h.render(c, http.StatusBadRequest, key, form, nil, parseErr)
			return
		}
		result, err := h.service.Submit(c.Request.Context(), key, form)
		if err != nil {
			status, _, _, ok := classify(err)
			if !ok {
				h.logger.Errorw("error submitting registration", "team_name", form.TeamName, "error", err)
			}
			h.render(c, status, key, form, nil, err)
			return
		}
		h.render(c, http.StatusOK, key, form, result, nil)

	default:
		h.render(c, http.StatusBadRequest, key, form, nil, errUnknownAction)
	}
}

// RejectPage renders the posted form with the rejection message. It answers
// page submissions the rate limiter turned away.
func (h *Handler) RejectPage(c *gin.Context, status int, _ string, _ string) {
	form, _ := parseForm(c)
	message := "Too many submissions. Please wait a minute and try again."
	if status == http.StatusServiceUnavailable {
		message = "Submissions are temporarily unavailable. Please try again shortly."
	}
	page := h.newPage(c.PostForm("submission_key"), form)
	if page.SubmissionKey == "" {
		page.SubmissionKey = uuid.NewString()
	}
	page.Error = message
	c.HTML(status, web.RegisterTemplate, page)
}

func (h *Handler) render(c *gin.Context, status int, key string, form model.TeamForm, result *model.SubmissionResult, err error) {
	if key == "" {
		key = uuid.NewString()
	}
	page := h.newPage(key, form)
	page.Result = result
	if err != nil {
		page.Error = pageMessage(err)
	}
	c.HTML(status, web.RegisterTemplate, page)
}

func pageMessage(err error) string {
	if _, _, message, ok := classify(err); ok {
		return message
	}
	switch {
	case errors.Is(err, model.ErrMemberNotFound):
		return "That member is no longer on the form."
	case errors.Is(err, errUnknownAction):
		return "Unknown form action."
	default:
		return "Something went wrong. Please try again."
	}
}

// parseForm rebuilds the form state by replaying the posted values through
// the form transitions. Parse errors are reported but do not stop the
// remaining fields from being applied.
func parseForm(c *gin.Context) (model.TeamForm, error) {
	form := model.TeamForm{}
	var errs []error

	apply := func(next model.TeamForm, err error) {
		if err != nil {
			errs = append(errs, err)
			return
		}
		form = next
	}

	apply(model.UpdateField(form, model.FieldTeamName, c.PostForm("teamName")))
	apply(model.UpdateField(form, model.FieldTeamSize, c.PostForm("teamSize")))
	apply(model.UpdateField(form, model.FieldAgreeTerms, c.PostForm("agreeTerms")))

	ids := c.PostFormArray("member_id")
	columns := map[string][]string{
		model.FieldFirstName: c.PostFormArray("member_firstName"),
		model.FieldLastName:  c.PostFormArray("member_lastName"),
		model.FieldEmail:     c.PostFormArray("member_email"),
		model.FieldRole:      c.PostFormArray("member_role"),
	}

	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		form = model.AddMember(form)
		if _, err := uuid.Parse(id); err == nil && !seen[id] {
			form.Members[i].ID = id
			seen[id] = true
		}
		for field, values := range columns {
			if i < len(values) {
				apply(model.UpdateMember(form, i, field, values[i]))
			}
		}
	}

	if len(form.Members) == 0 {
		form = model.AddMember(form)
	}

	return form, errors.Join(errs...)
}
