package document

import "strings"

// Bucket keys form a fixed closed set; renderers key UI sections off them.
const (
	BucketPermit               = "permit"
	BucketPrescription         = "prescription"
	BucketCoverLetter          = "coverLetter"
	BucketEnvelope             = "envelope"
	BucketPhysicianCertificate = "physicianCertificate"
	BucketOther                = "other"
)

// categories maps each bucket to the raw type labels it accepts. Declaration
// order is precedence order: if a label were ever listed under two buckets,
// the first-declared bucket would win.
var categories = []struct {
	key    string
	labels []string
}{
	{BucketPermit, []string{"Placard", "Parking Permit"}},
	{BucketPrescription, []string{"Prescription"}},
	{BucketCoverLetter, []string{"Cover Letter"}},
	{BucketEnvelope, []string{"Envelope"}},
	{BucketPhysicianCertificate, []string{"Physician Credentials"}},
}

var labelToBucket = buildLabelIndex()

func buildLabelIndex() map[string]string {
	index := make(map[string]string)
	for _, cat := range categories {
		for _, label := range cat.labels {
			normalized := normalizeLabel(label)
			if _, exists := index[normalized]; !exists {
				index[normalized] = cat.key
			}
		}
	}
	return index
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Buckets partitions a task's documents by category.
type Buckets struct {
	Permit               []*Document
	Prescription         []*Document
	CoverLetter          []*Document
	Envelope             []*Document
	PhysicianCertificate []*Document
	Other                []*Document
}

// Classify partitions documents into buckets by exact, case-insensitive,
// whitespace-trimmed match of the raw type against the category table.
// Documents with an unmatched, empty or missing type land in Other.
func Classify(docs []*Document) Buckets {
	var b Buckets
	for _, doc := range docs {
		key := BucketOther
		if doc.Type != nil {
			if normalized := normalizeLabel(*doc.Type); normalized != "" {
				if matched, ok := labelToBucket[normalized]; ok {
					key = matched
				}
			}
		}
		switch key {
		case BucketPermit:
			b.Permit = append(b.Permit, doc)
		case BucketPrescription:
			b.Prescription = append(b.Prescription, doc)
		case BucketCoverLetter:
			b.CoverLetter = append(b.CoverLetter, doc)
		case BucketEnvelope:
			b.Envelope = append(b.Envelope, doc)
		case BucketPhysicianCertificate:
			b.PhysicianCertificate = append(b.PhysicianCertificate, doc)
		default:
			b.Other = append(b.Other, doc)
		}
	}
	return b
}
