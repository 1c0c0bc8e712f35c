// Package contact implements the contact submission pipeline: schema
// validation of raw form payloads, honeypot spam filtering, notification
// email assembly, and dispatch through the outbound mail transport.
//
// The pipeline's single entry point is Service.Submit, which converts every
// internal outcome into a closed Result value - callers never see raw
// errors. Spam detections report success to the caller while skipping
// delivery, so automated senders receive no rejection signal.
package contact
