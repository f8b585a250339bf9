package layout

// ── Login page ────────────────────────────────────────────────────────────────

const tmplLogin = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Network Analysis Dashboard — Sign in</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'Inter',sans-serif;background:#F4F7F9;color:#2D3436;display:flex;align-items:center;justify-content:center;min-height:100vh}
.login-card{background:#FFFFFF;border:1px solid #E0E0E0;border-radius:12px;box-shadow:0 4px 12px rgba(0,0,0,0.05);padding:40px;width:360px}
h1{font-size:1.4em;color:#4A148C;margin-bottom:6px}
.sub{color:#636e72;font-size:.9em;margin-bottom:24px}
label{display:block;font-weight:600;font-size:.85em;margin-bottom:4px}
input{width:100%;padding:10px;border:1px solid #E0E0E0;border-radius:8px;margin-bottom:16px;font-size:.95em}
button{width:100%;padding:12px;background:#6C5CE7;color:#fff;border:none;border-radius:8px;font-weight:600;font-size:1em;cursor:pointer}
button:hover{background:#4A148C}
.error{background:#fdecea;color:#c0392b;border-radius:8px;padding:10px;font-size:.85em;margin-bottom:16px}
</style>
</head>
<body>
<div class="login-card">
<h1>Network Analysis Dashboard</h1>
<p class="sub">Sign in to view your social connectivity insights</p>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="POST" action="/login">
<label for="username">Username</label>
<input type="text" id="username" name="username" autocomplete="username">
<label for="password">Password</label>
<input type="password" id="password" name="password" autocomplete="current-password">
<button type="submit">Sign in</button>
</form>
</div>
</body>
</html>
`

// ── Dashboard page ────────────────────────────────────────────────────────────

const tmplDashboard = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Network Analysis Dashboard</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'Inter',sans-serif;background:#F4F7F9;color:#2D3436;min-height:100vh}
header{background:#4A148C;padding:30px 60px;display:flex;align-items:center;box-shadow:0 4px 10px rgba(0,0,0,0.1)}
header .titles{flex:1}
header h1{color:#fff;font-size:2em}
header p{color:rgba(255,255,255,0.7)}
header .logout{color:#fff;background:#6C5CE7;padding:10px 20px;border-radius:8px;text-decoration:none;font-weight:600}
.row{display:flex;gap:30px;padding:40px 60px}
.card{background:#FFFFFF;border:1px solid #E0E0E0;border-radius:12px;padding:25px;box-shadow:0 4px 12px rgba(0,0,0,0.05)}
.guide{flex:1}
.guide h4{color:#4A148C;border-bottom:1px solid #E0E0E0;padding-bottom:10px;margin-bottom:12px}
.guide b{color:#6C5CE7}
.guide p{margin:4px 0 12px;font-size:.95em;line-height:1.6}
.guide ul{margin-left:20px;font-size:.95em;line-height:1.6}
.stats{flex:1.5}
.stats h5{text-align:center;color:#3B738F;margin-bottom:12px}
.hint{font-size:.9em;color:#636e72;text-align:center;margin-top:15px}
.tabs{padding:0 60px 40px}
.tabs input[type=radio]{display:none}
.tabs .tab-label{display:inline-block;padding:15px;font-weight:600;color:#2D3436;cursor:pointer}
{{range $i, $t := .Tabs}}
#tab-{{$t.ID}}:checked ~ .tab-labels label[for=tab-{{$t.ID}}]{border-bottom:4px solid #4A148C;color:#4A148C;background:rgba(74,20,140,0.05)}
#tab-{{$t.ID}}:checked ~ .tab-panels #panel-{{$t.ID}}{display:block}
{{end}}
.tab-labels{border-bottom:1px solid #E0E0E0}
.tab-panel{display:none;padding:40px 0;background:#F4F7F9}
.tab-panel .panel-row{display:flex;gap:30px;width:100%}
.network-card{flex:2}
.network-card h4{color:#4A148C;text-align:center;margin-bottom:12px}
.side{flex:1;display:flex;flex-direction:column;gap:30px}
.side h5{color:#3B738F;text-align:center;margin-bottom:10px}
.side .hint{font-size:.85em;text-align:left;margin-top:10px}
.chart{width:100%;overflow:hidden}
.chart svg{max-width:100%;height:auto}
footer{padding:0 60px 30px;font-size:.85em;color:#636e72}
footer a{color:#3B738F}
</style>
</head>
<body>
<header>
<div class="titles">
<h1>Network Analysis Dashboard</h1>
<p>Interactive Visual Insights into Social Connectivity</p>
</div>
<a class="logout" href="/logout">Logout</a>
</header>

<div class="row">
<div class="card guide">
<h4>&#128269; Analytics Guide &amp; Tips</h4>
<b>Community Detection</b>
<p>Nodes of the same color belong to a cluster, representing people mathematically grouped by shared connections.</p>
<b>Proximity &amp; Influence</b>
<p>The closer two nodes are, the higher their 'Closeness Centrality'. Nodes at the edges are typically peripheral connections.</p>
<b>Identifying 'Bridges'</b>
<p>Nodes positioned between different colored clusters are 'bridge friends' connecting separate social groups.</p>
<b>Interactive Tips</b>
<ul>
<li>Hover over any node to reveal masked identities.</li>
<li>Cluster names in the legend identify each circle.</li>
<li>Use the resolution tabs to switch between coarse and granular views.</li>
<li>Export a summary report from the <a href="/dashboard/export.pdf">PDF download</a>.</li>
</ul>
</div>
<div class="card stats">
<h5>&#128200; Mutual Connection Distribution</h5>
<div class="chart">{{.Users}}</div>
<p class="hint">&#128161; A higher blue line percentage indicates a deeper integration into your social circle.</p>
</div>
</div>

<div class="tabs">
{{range $i, $t := .Tabs}}<input type="radio" name="tabset" id="tab-{{$t.ID}}"{{if eq $i 0}} checked{{end}}>
{{end}}<div class="tab-labels">
{{range .Tabs}}<label class="tab-label" for="tab-{{.ID}}">{{.Label}}</label>
{{end}}</div>
<div class="tab-panels">
{{range .Tabs}}<div class="tab-panel" id="panel-{{.ID}}">
<div class="panel-row">
<div class="card network-card">
<h4>Social Network Visualization</h4>
<div class="chart">{{.Network}}</div>
<p class="hint">&#128161; Tight clusters represent 'friendship circles.' Nodes sitting between clusters are your 'Bridge' friends.</p>
</div>
<div class="side">
<div class="card">
<h5>Cluster Path Distribution</h5>
<div class="chart">{{.Paths}}</div>
<p class="hint">&#128161; Shorter vertical lines indicate a 'tight-knit' cluster where members connect directly.</p>
</div>
<div class="card">
<h5>Inter-Cluster Affinity</h5>
<div class="chart">{{.Closeness}}</div>
<p class="hint">&#128161; Darker squares show 'Sister Clusters' — separate groups that share high mutual interaction.</p>
</div>
</div>
</div>
</div>
{{end}}</div>
</div>
</body>
</html>
`
