package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/FAB-TCG-Colombia/ChallongeAnalisis/internal/auth"
	"github.com/FAB-TCG-Colombia/ChallongeAnalisis/internal/challonge"
	"github.com/FAB-TCG-Colombia/ChallongeAnalisis/internal/dao"
	"github.com/FAB-TCG-Colombia/ChallongeAnalisis/internal/jobs"
	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_COMMUNITY = "fabco"
	R2_BUCKET_NAME    = "fabco-tournaments"
)

func main() {
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	envFile := flag.String("env-file", ".env", "Path to an env file with Challonge credentials")
	community := flag.String("community", DEFAULT_COMMUNITY, "Challonge community subdomain to fetch tournaments for")
	communityId := flag.String("community-id", "", "Challonge community identifier for the v2 API (falls back to CHALLONGE_COMMUNITY_ID)")
	accessToken := flag.String("access-token", "", "Direct OAuth access token for API calls (falls back to CHALLONGE_ACCESS_TOKEN)")
	clientId := flag.String("client-id", "", "OAuth client identifier (falls back to CHALLONGE_CLIENT_ID)")
	clientSecret := flag.String("client-secret", "", "OAuth client secret (falls back to CHALLONGE_CLIENT_SECRET)")
	year := flag.Int("year", time.Now().Year(), "Year to filter tournaments by (based on start or creation date)")
	output := flag.String("output", "", "Path to write CSV output (defaults to tournaments_<community>_<year>.csv)")
	mode := flag.String("mode", "local", "Export destination: local or r2")
	legacyPagination := flag.Bool("legacy-pagination", false, "Use the v1-style page-until-empty pagination")
	flag.Parse()

	token, err := auth.ResolveAccessToken(auth.Options{
		EnvFile:      *envFile,
		AccessToken:  *accessToken,
		ClientId:     *clientId,
		ClientSecret: *clientSecret,
	})
	if err != nil {
		logrus.Fatal("Failed to resolve Challonge credentials: ", err)
	}

	id := *communityId
	if id == "" {
		id = os.Getenv("CHALLONGE_COMMUNITY_ID")
	}
	if id == "" {
		logrus.Fatal("CHALLONGE_COMMUNITY_ID is required. Provide -community-id or set it in the env.")
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = fmt.Sprintf("tournaments_%s_%d.csv", *community, *year)
	}

	client := challonge.NewChallongeV2Client(challonge.BASE_URL_V2, token)
	client.SetLegacyPagination(*legacyPagination)

	var tournamentDAO dao.TournamentDAO
	switch *mode {
	case "local":
		tournamentDAO = dao.NewLocalDAO(outputPath)
	case "r2":
		tournamentDAO = dao.NewR2DAO(R2_BUCKET_NAME, path.Join("exports", filepath.Base(outputPath)))
	default:
		logrus.Fatalf("Unknown mode: %s", *mode)
	}

	count, err := jobs.RunExport(client, tournamentDAO, id, *year)
	if err != nil {
		logrus.Fatal("Export failed: ", err)
	}
	logrus.Infof("Exported %d tournaments to %s", count, outputPath)
}
