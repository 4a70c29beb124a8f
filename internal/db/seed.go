package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// demoKey derives a stable id so that seeding twice leaves one copy of the
// demo data.
func demoKey(parts ...any) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, fmt.Appendf(nil, "campaign-editor/demo/%v", parts))
}

// Seed inserts demo campaign trees into the campaign-editor database.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	creativeTypes := []string{"Image", "Video", "Carousel", "Text"}
	for i := 1; i <= 3; i++ {
		campaignID := demoKey("campaign", i)
		start := time.Now().UTC().Truncate(24 * time.Hour)
		end := start.AddDate(0, 1, 0)
		kind := []string{"Total", "Daily"}[i%2]
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, status, brand_id, platform_account_id, budget_amount, budget_kind, start_date, end_date, objective)
VALUES ($1,$2,'active',$3,$4,$5,$6,$7,$8,$9) ON CONFLICT DO NOTHING`,
			campaignID.String(), fmt.Sprintf("Campaign %d", i), fmt.Sprintf("brand-%d", i), fmt.Sprintf("account-%d", i),
			float64(1000*i), kind, start, end, "conversions")
		if err != nil {
			return err
		}

		for j := 1; j <= 2; j++ {
			adGroupID := demoKey("ad_group", i, j)
			_, err = db.Exec(ctx, `INSERT INTO ad_groups (id, campaign_id, name, status)
VALUES ($1,$2,$3,'active') ON CONFLICT DO NOTHING`,
				adGroupID.String(), campaignID.String(), fmt.Sprintf("Ad group %d.%d", i, j))
			if err != nil {
				return err
			}

			for k := 1; k <= 3; k++ {
				title := fmt.Sprintf("Creative %d.%d.%d", i, j, k)
				url := fmt.Sprintf("https://example.com/creatives/%d/%d/%d", i, j, k)
				_, err = db.Exec(ctx, `INSERT INTO creatives
    (id, ad_group_id, campaign_id, name, type, status, titles, creative_urls)
VALUES ($1,$2,$3,$4,$5,'active',$6,$7) ON CONFLICT DO NOTHING`,
					demoKey("creative", i, j, k).String(), adGroupID.String(), campaignID.String(),
					title, creativeTypes[r.Intn(len(creativeTypes))], []string{title}, []string{url})
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
