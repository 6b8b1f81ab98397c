package main

import (
	"net/http"

	"fieldreport/bizerror"
	"fieldreport/common"
	"fieldreport/config"
	"fieldreport/credstore"
	"fieldreport/devserver"
	"fieldreport/export"
	"fieldreport/infra/tracing"
	"fieldreport/persistence"
	"fieldreport/report"
	"fieldreport/session"
	"fieldreport/upload"
	"fieldreport/workitem"

	"github.com/gin-gonic/gin"
)

func main() {
	common.Log.Info("service start")

	cfg, err := config.Load()
	if err != nil {
		common.Log.Fatalf("load config failed %v", err)
	}

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		common.Log.Fatalf("parse database config failed %v", err)
	}

	// create database (no conflict)
	if dbConfig.DriverType == "mysql" {
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			common.Log.Fatalf("failed to prepare database %v", err)
		}
	}

	// connect database
	ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
	if err := ds.Start(); err != nil {
		common.Log.Fatalf("database connection failed %v", err)
	}
	defer ds.Stop()
	persistence.ActiveDataSourceManager = ds

	// database migration (race condition)
	models := append(devserver.Models(), &credstore.StoredCredential{})
	if err := ds.GormDB().AutoMigrate(models...).Error; err != nil {
		common.Log.Fatalf("database migration failed %v", err)
	}
	if err := devserver.SeedDemoData(); err != nil {
		common.Log.Fatalf("seed demo data failed %v", err)
	}

	tracingCloser, err := tracing.Bootstrap(common.GetServiceName())
	if err != nil {
		common.Log.Fatalf("tracing bootstrap failed %v", err)
	}
	defer tracingCloser.Close()

	session.Bootstrap(cfg)
	workitem.Bootstrap(cfg)
	report.Bootstrap(cfg)
	if err := export.Bootstrap(cfg.DocumentDir); err != nil {
		common.Log.Fatalf("document dir bootstrap failed %v", err)
	}
	if err := upload.Bootstrap(cfg.Upload); err != nil {
		common.Log.Fatalf("upload bootstrap failed %v", err)
	}

	engine := gin.Default()
	engine.Use(bizerror.ErrorHandling(), tracing.TracingIngress())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "fieldreport")
	})

	devserver.RegisterBackendAPI(engine)

	if err := engine.Run(cfg.ServeAddr); err != nil {
		panic(err)
	}
}
