package devserver

import (
	"encoding/json"
	"net/http"
	"time"

	"fieldreport/credstore"
	"fieldreport/envelope"
	"fieldreport/persistence"
	"fieldreport/workitem"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const TokenExpiration = 24 * time.Hour

var (
	TokenCache = cache.New(TokenExpiration, 1*time.Minute)

	loginLimiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 10)

	// QuirkPrefix, when set, is prepended to login response bodies the way
	// the real backend leaks notice text before its JSON.
	QuirkPrefix = ""
)

func RegisterBackendAPI(r *gin.Engine) {
	r.POST("/appMlogin.php", handleLogin(credstore.RoleManager))
	r.POST("/appMEngglogin.php", handleLogin(credstore.RoleEngineer))
	r.POST("/appCheckINOUT.php", handleCheckInOut)
	r.POST("/appPendingReason.php", handlePendingReasons)
}

// handleLogin authenticates the form pair and answers with the role's full
// work item list in one response, exactly as the legacy endpoints do.
func handleLogin(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !loginLimiter.Allow() {
			c.String(http.StatusTooManyRequests, `{"status":"failed","message":"server busy"}`)
			return
		}

		user, ok := authenticateForm(c, role)
		if !ok {
			return
		}

		token := uuid.New().String()
		TokenCache.Set(token, user.Name, cache.DefaultExpiration)
		c.Header("X-Auth-Token", token)

		db := persistence.ActiveDataSourceManager.GormDB()
		query := db.Model(&Complaint{}).Order("id ASC")
		if role == credstore.RoleEngineer {
			query = query.Where("assigned_engineer = ?", user.Name)
		}
		var records []Complaint
		if err := query.Scan(&records).Error; err != nil {
			c.String(http.StatusInternalServerError, `{"status":"failed","message":"query failed"}`)
			return
		}

		items := make([]workitem.WorkItem, 0, len(records))
		for _, r := range records {
			items = append(items, workItemOf(r))
		}
		body, err := json.Marshal(gin.H{"status": envelope.StatusSuccess, "data": items})
		if err != nil {
			c.String(http.StatusInternalServerError, `{"status":"failed","message":"marshal failed"}`)
			return
		}
		c.String(http.StatusOK, QuirkPrefix+string(body))
	}
}

// handleCheckInOut applies the terminal status exactly once. The response
// carries the outcome as a literal status marker, not structured data.
func handleCheckInOut(c *gin.Context) {
	if _, ok := authenticateForm(c, ""); !ok {
		return
	}

	servNo := c.PostForm("servno")
	pendingReason := c.PostForm("pendingreason")

	db := persistence.ActiveDataSourceManager.GormDB()
	var record Complaint
	if err := db.Where("serv_no = ?", servNo).First(&record).Error; err != nil {
		c.String(http.StatusOK, `{"status":"failed","message":"record not found"}`)
		return
	}
	if record.CheckState == CheckStateDone {
		c.String(http.StatusOK, `{"status":"`+envelope.StatusAlreadyProcessed+`"}`)
		return
	}

	update := map[string]interface{}{"check_state": CheckStateDone}
	if pendingReason != "" {
		update["status"] = workitem.StatusPending
		update["pending_reason"] = pendingReason
	} else {
		update["status"] = workitem.StatusCompleted
	}
	if err := db.Model(&Complaint{}).Where("serv_no = ?", servNo).Updates(update).Error; err != nil {
		c.String(http.StatusOK, `{"status":"failed","message":"update failed"}`)
		return
	}
	c.String(http.StatusOK, `{"status":"`+envelope.StatusRowUpdated+`"}`)
}

func handlePendingReasons(c *gin.Context) {
	if _, ok := authenticateForm(c, ""); !ok {
		return
	}

	db := persistence.ActiveDataSourceManager.GormDB()
	var reasons []PendingReason
	if err := db.Model(&PendingReason{}).Order("id ASC").Scan(&reasons).Error; err != nil {
		c.String(http.StatusInternalServerError, `{"status":"failed","message":"query failed"}`)
		return
	}
	list := make([]gin.H, 0, len(reasons))
	for _, r := range reasons {
		list = append(list, gin.H{"reason": r.Reason})
	}
	c.JSON(http.StatusOK, gin.H{"status": envelope.StatusSuccess, "data": list})
}

// authenticateForm checks the form pair against the user table. role is
// empty when any role may call the endpoint. The legacy contract answers
// HTTP 200 with a failed envelope on a bad pair.
func authenticateForm(c *gin.Context, role string) (User, bool) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	db := persistence.ActiveDataSourceManager.GormDB()
	query := db.Where(&User{Name: username, Secret: HashSha256(password)})
	if role != "" {
		query = query.Where(&User{Role: role})
	}
	var user User
	if err := query.First(&user).Error; err != nil {
		c.String(http.StatusOK, `{"status":"failed","message":"Invalid username or password"}`)
		return User{}, false
	}
	return user, true
}

func workItemOf(r Complaint) workitem.WorkItem {
	return workitem.WorkItem{
		ID:               r.ServNo,
		ClientName:       r.ClientName,
		Address:          r.Address,
		SystemName:       r.SystemName,
		TaskType:         r.TaskType,
		AssignedEngineer: r.AssignedEngineer,
		AssignDate:       r.AssignDate,
		Remark:           r.Remark,
		Status:           r.Status,
		ReportedAt:       r.ReportedAt,
	}
}
