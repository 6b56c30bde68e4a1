package logginghelper

import (
	"github.com/Egor213/TerraTrack/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogUploadReceived(filename string, size int) {
	log.WithFields(log.Fields{
		"filename": filename,
		"bytes":    size,
	}).Info("Received log file")
}

func LogUploadSaved(res domain.UploadResult) {
	log.WithFields(log.Fields{
		"filename":  res.Filename,
		"upload_id": res.UploadId,
		"entries":   res.EntriesCount,
		"fixed":     res.FixedCount,
	}).Info("Upload saved successfully")
}

func LogUploadError(filename string, err error) {
	log.WithFields(log.Fields{
		"filename": filename,
		"error":    err,
	}).Error("Failed to save upload")
}
