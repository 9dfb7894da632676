package route

// ── Events page ───────────────────────────────────────────────────────────────

const tmplPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>SportsSeat — Live Sports Tickets</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'Inter',system-ui,sans-serif;background:#f8fafc;color:#1e293b;font-size:15px;line-height:1.5}
a{color:#4f46e5;text-decoration:none}
nav{background:#fff;border-bottom:1px solid #e2e8f0;padding:12px 24px;display:flex;gap:16px;align-items:center}
nav .brand{color:#4f46e5;font-weight:800;font-size:18px;margin-right:16px}
nav a.sport{font-size:13px;padding:4px 10px;border:1px solid #e2e8f0;border-radius:16px;color:#475569}
nav a.sport:hover{border-color:#4f46e5;color:#4f46e5}
main{max-width:1080px;margin:0 auto;padding:24px}
h1{font-size:22px;font-weight:800;margin-bottom:16px}
form.filters{display:flex;gap:8px;flex-wrap:wrap;margin-bottom:24px}
form.filters input,form.filters select{padding:8px 12px;border:1px solid #cbd5e1;border-radius:6px;font-size:14px}
form.filters input[name=q]{flex:1;min-width:200px}
form.filters button{padding:8px 18px;background:#4f46e5;color:#fff;border:0;border-radius:6px;font-weight:600;cursor:pointer}
.toasts{margin-bottom:16px}
.toast{padding:8px 14px;border-radius:6px;font-size:13px;margin-bottom:6px;display:flex;gap:8px;align-items:center}
.toast.success{background:#ecfdf5;color:#047857}
.toast.info{background:#eff6ff;color:#1d4ed8}
.toast.error{background:#fef2f2;color:#b91c1c}
.toast a.retry{margin-left:auto;font-weight:600;color:inherit;text-decoration:underline}
.events{display:grid;grid-template-columns:repeat(auto-fill,minmax(300px,1fr));gap:20px}
.event-card{background:#fff;border:1px solid #e2e8f0;border-radius:10px;overflow:hidden}
.event-image{position:relative}
.event-image img{width:100%;height:160px;object-fit:cover;display:block}
.event-date{position:absolute;top:10px;left:10px;background:#4f46e5;color:#fff;font-size:12px;font-weight:700;padding:3px 10px;border-radius:14px}
.event-content{padding:14px}
.event-title{font-size:16px;font-weight:700;margin-bottom:4px}
.event-venue{font-size:13px;color:#64748b;margin-bottom:12px}
.event-footer{display:flex;align-items:center;justify-content:space-between}
.event-price{font-size:15px;font-weight:700}
.event-price .from{font-size:12px;font-weight:400;color:#64748b}
.event-footer a.book{padding:6px 16px;background:#4f46e5;color:#fff;border-radius:6px;font-size:13px;font-weight:600}
.no-events{text-align:center;padding:48px;color:#64748b;grid-column:1/-1}
.no-events h3{color:#1e293b;margin-bottom:4px}
footer{text-align:center;color:#94a3b8;font-size:12px;padding:24px}
</style>
</head>
<body>
<nav>
	<span class="brand">SportsSeat</span>
	{{range .Sports}}<a class="sport" href="/?sport={{.}}">{{.}}</a>{{end}}
</nav>
<main>
<h1>Upcoming Events</h1>
<div class="toasts">
{{range .Notices}}	<div class="toast {{.Severity}}">{{.Message}}{{if .RetryPath}}<a class="retry" href="{{.RetryPath}}">Retry</a>{{end}}</div>
{{end}}</div>
<form class="filters" method="get" action="/">
	<input name="q" placeholder="Search teams, events, venues..." value="{{.Criteria.SearchText}}">
	<select name="sport">
		<option value="">All Sports</option>
		{{range .Sports}}<option value="{{.}}"{{if eq . $.Criteria.Sport}} selected{{end}}>{{.}}</option>{{end}}
	</select>
	<select name="date">
		{{range .Buckets}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
	</select>
	<input name="when" placeholder="or a day like 'next friday'" value="{{.When}}">
	<button type="submit">Search</button>
</form>
<div class="events">
{{if .Events}}{{range .Events}}	<div class="event-card">
		<div class="event-image">
			<img src="{{.Image}}" alt="{{.Title}}" loading="lazy" onerror="this.src='https://via.placeholder.com/400x200/4F46E5/FFFFFF?text=Sports+Event'">
			<div class="event-date">{{eventDate .Date}}</div>
		</div>
		<div class="event-content">
			<h3 class="event-title">{{.Title}}</h3>
			<div class="event-venue">{{.Venue}}</div>
			<div class="event-footer">
				<div class="event-price"><span class="from">From</span> ${{price .Price}}</div>
				<a class="book" href="/api/events/{{.ID}}">Book Now</a>
			</div>
		</div>
	</div>
{{end}}{{else}}	<div class="no-events">
		<h3>No events found</h3>
		<p>Try adjusting your search criteria</p>
	</div>
{{end}}</div>
</main>
<footer>{{.Total}} of {{.CatalogSize}} events shown</footer>
</body>
</html>
`
