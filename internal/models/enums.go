package models

import "fmt"

// ClientStatus is the lifecycle stage of a client relationship.
type ClientStatus string

const (
	ClientStatusLead     ClientStatus = "Lead"
	ClientStatusActive   ClientStatus = "Active"
	ClientStatusInactive ClientStatus = "Inactive"
	ClientStatusChurned  ClientStatus = "Churned"
)

// ClientStatuses lists every status in display order.
var ClientStatuses = []ClientStatus{ClientStatusLead, ClientStatusActive, ClientStatusInactive, ClientStatusChurned}

// ParseClientStatus validates s as a ClientStatus.
func ParseClientStatus(s string) (ClientStatus, error) {
	for _, st := range ClientStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown client status %q", s)
}

// ClientSegment is the marketing segment a client belongs to.
type ClientSegment string

// ClientSegments lists the known segments.
var ClientSegments = []ClientSegment{
	"Salaried millennials in metro, Tier-1 cities",
	"Salaried millennials in Tier-2+ cities",
	"Salaried Gen Z",
	"Salaried Gen X in Tier-1, Tier-2+ cities",
	"Self-employed professionals",
	"Gen Z student",
	"Business owner",
}

// ParseClientSegment validates s as a known ClientSegment.
func ParseClientSegment(s string) (ClientSegment, error) {
	for _, seg := range ClientSegments {
		if string(seg) == s {
			return seg, nil
		}
	}
	return "", fmt.Errorf("unknown client segment %q", s)
}

// AssetClass is the categorical bucket of a holding.
type AssetClass string

const (
	AssetClassStocks        AssetClass = "Stocks"
	AssetClassMutualFunds   AssetClass = "Mutual Funds"
	AssetClassFixedDeposits AssetClass = "Fixed Deposits"
	AssetClassBonds         AssetClass = "Bonds"
	AssetClassPMS           AssetClass = "PMS"
	AssetClassAIF           AssetClass = "AIF"
)

// AssetClasses lists every asset class in display order.
var AssetClasses = []AssetClass{
	AssetClassStocks, AssetClassMutualFunds, AssetClassFixedDeposits,
	AssetClassBonds, AssetClassPMS, AssetClassAIF,
}

// ParseAssetClass validates s as an AssetClass. The long form
// "Fixed Deposits (FD)" is accepted as an alias.
func ParseAssetClass(s string) (AssetClass, error) {
	if s == "Fixed Deposits (FD)" {
		return AssetClassFixedDeposits, nil
	}
	for _, ac := range AssetClasses {
		if string(ac) == s {
			return ac, nil
		}
	}
	return "", fmt.Errorf("unknown asset class %q", s)
}

// TaskPriority ranks a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// ParseTaskPriority validates s as a TaskPriority.
func ParseTaskPriority(s string) (TaskPriority, error) {
	switch p := TaskPriority(s); p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("unknown task priority %q", s)
}

// TaskStatus is the progress of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// TaskStatuses lists every task status in board order.
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// ParseTaskStatus validates s as a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	for _, st := range TaskStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

// Role is the label chosen at mock login.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// ParseRole validates s as a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleStaff:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
