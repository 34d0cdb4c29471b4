package fixtures

import (
	"time"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/holiday"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

// GetDefaultLeaveTypes returns the standard leave types of the Burundian
// labour code as configured for a fresh deployment.
func GetDefaultLeaveTypes() []leave.LeaveType {
	return []leave.LeaveType{
		{
			Kind:                  leave.KindAnnual,
			Name:                  "Congé annuel",
			Description:           strPtr("Annual paid leave, deducted from the yearly allocation"),
			RequiresJustification: false,
			MaxDurationDays:       nil,
			ApproverRole:          leave.ApproverManager,
			NoticeDays:            3,
			Active:                true,
		},
		{
			Kind:                  leave.KindSick,
			Name:                  "Congé maladie",
			Description:           strPtr("Sick leave, medical certificate required"),
			RequiresJustification: true,
			MaxDurationDays:       nil,
			ApproverRole:          leave.ApproverHR,
			NoticeDays:            0,
			Active:                true,
		},
		{
			Kind:                  leave.KindMaternity,
			Name:                  "Congé de maternité",
			Description:           strPtr("Maternity leave (12 weeks)"),
			RequiresJustification: true,
			MaxDurationDays:       intPtr(84),
			ApproverRole:          leave.ApproverHR,
			NoticeDays:            14,
			Active:                true,
		},
		{
			Kind:                  leave.KindPaternity,
			Name:                  "Congé de paternité",
			Description:           strPtr("Paternity leave at the birth of a child"),
			RequiresJustification: true,
			MaxDurationDays:       intPtr(4),
			ApproverRole:          leave.ApproverManager,
			NoticeDays:            0,
			Active:                true,
		},
		{
			Kind:                  leave.KindBereavement,
			Name:                  "Congé de deuil",
			Description:           strPtr("Bereavement leave for the loss of a close relative"),
			RequiresJustification: false,
			MaxDurationDays:       intPtr(3),
			ApproverRole:          leave.ApproverManager,
			NoticeDays:            0,
			Active:                true,
		},
		{
			Kind:                  leave.KindTraining,
			Name:                  "Congé de formation",
			Description:           strPtr("Leave for approved training or study"),
			RequiresJustification: true,
			MaxDurationDays:       nil,
			ApproverRole:          leave.ApproverDirector,
			NoticeDays:            14,
			Active:                true,
		},
		{
			Kind:                  leave.KindExceptional,
			Name:                  "Congé exceptionnel",
			Description:           strPtr("Exceptional leave for family events (marriage, etc.)"),
			RequiresJustification: true,
			MaxDurationDays:       intPtr(5),
			ApproverRole:          leave.ApproverServiceChief,
			NoticeDays:            7,
			Active:                true,
		},
		{
			Kind:                  leave.KindUnpaid,
			Name:                  "Congé sans solde",
			Description:           strPtr("Unpaid leave for personal matters"),
			RequiresJustification: false,
			MaxDurationDays:       intPtr(30),
			ApproverRole:          leave.ApproverDirector,
			NoticeDays:            7,
			Active:                true,
		},
	}
}

// GetDefaultHolidays returns the fixed-date Burundian public holidays for a
// year. Movable feasts (Eid al-Fitr, Eid al-Adha) shift every year and must
// be added by an administrator.
func GetDefaultHolidays(region string, year int) []holiday.Holiday {
	day := func(month time.Month, d int, name string) holiday.Holiday {
		return holiday.Holiday{
			Region: region,
			Date:   time.Date(year, month, d, 0, 0, 0, 0, time.UTC),
			Name:   name,
		}
	}

	return []holiday.Holiday{
		day(time.January, 1, "Nouvel An"),
		day(time.February, 5, "Jour de l'Unité"),
		day(time.April, 6, "Commémoration du Président Ntaryamira"),
		day(time.May, 1, "Fête du Travail"),
		day(time.June, 8, "Commémoration du Président Nkurunziza"),
		day(time.July, 1, "Fête de l'Indépendance"),
		day(time.August, 15, "Assomption"),
		day(time.October, 13, "Commémoration du Prince Rwagasore"),
		day(time.October, 21, "Commémoration du Président Ndadaye"),
		day(time.November, 1, "Toussaint"),
		day(time.December, 25, "Noël"),
	}
}
