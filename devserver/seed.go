package devserver

import (
	"fieldreport/credstore"
	"fieldreport/idgen"
	"fieldreport/persistence"
	"fieldreport/workitem"
)

// SeedDemoData populates an empty emulator database with one manager, one
// engineer and a handful of assigned complaints. Existing data is kept.
func SeedDemoData() error {
	db := persistence.ActiveDataSourceManager.GormDB()

	var count int
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	records := []interface{}{
		&User{ID: idgen.NextID(), Name: "manager1", Secret: HashSha256("manager1"), Role: credstore.RoleManager},
		&User{ID: idgen.NextID(), Name: "engineer1", Secret: HashSha256("engineer1"), Role: credstore.RoleEngineer},

		&Complaint{ID: idgen.NextID(), ServNo: "SRV0001", ClientName: "Acme Hospital",
			Address: "12 Ring Road, Pune", SystemName: "CCTV", TaskType: "Breakdown",
			AssignedEngineer: "engineer1", AssignDate: "2026-08-18", Status: workitem.StatusPending,
			ReportedAt: "2026-08-17"},
		&Complaint{ID: idgen.NextID(), ServNo: "SRV0002", ClientName: "Orbit Mall",
			Address: "Sector 4, Navi Mumbai", SystemName: "Fire Alarm", TaskType: "Preventive",
			AssignedEngineer: "engineer1", AssignDate: "2026-08-19", Status: workitem.StatusPending,
			ReportedAt: "2026-08-18"},
		&Complaint{ID: idgen.NextID(), ServNo: "SRV0003", ClientName: "Lotus Towers",
			Address: "MG Road, Bengaluru", SystemName: "Access Control", TaskType: "Breakdown",
			AssignedEngineer: "engineer2", AssignDate: "2026-08-19", Status: workitem.StatusStandBy,
			ReportedAt: "2026-08-18"},

		&PendingReason{ID: idgen.NextID(), Reason: "Part awaited"},
		&PendingReason{ID: idgen.NextID(), Reason: "Customer unavailable"},
		&PendingReason{ID: idgen.NextID(), Reason: "Access not granted"},
	}
	for _, r := range records {
		if err := db.Create(r).Error; err != nil {
			return err
		}
	}
	return nil
}
